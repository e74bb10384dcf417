package service

import (
	"context"
	"time"

	"scheduling-agent/core/logger"
	"scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/directory/repository"
)

// SeedDemoDirectory loads a small fixed roster so the API is usable
// without an HR sync. Start dates are relative to now so the search
// window always lands in the future.
func SeedDemoDirectory(ctx context.Context, repo repository.DirectoryRepositoryInterface) error {
	startDate := time.Now().UTC().AddDate(0, 0, 14).Truncate(24 * time.Hour)

	managers := []entity.Manager{
		{ID: "mgr_001", Name: "Arjun Mehta", Email: "arjun.mehta@example.com", Role: entity.RoleHiringManager, Timezone: "Asia/Kolkata"},
		{ID: "mgr_002", Name: "Sarah Chen", Email: "sarah.chen@example.com", Role: entity.RoleReportingManager, Timezone: "America/Los_Angeles"},
		{ID: "mgr_003", Name: "Priya Nair", Email: "priya.nair@example.com", Role: entity.RoleHRBP, Timezone: "Asia/Kolkata"},
		{ID: "mgr_004", Name: "Tom Becker", Email: "tom.becker@example.com", Role: entity.RoleReportingManager, Timezone: "Europe/Berlin"},
	}

	candidates := []entity.Candidate{
		{
			ID: "cand_001", Name: "Ravi Sharma", Email: "ravi.sharma@example.com",
			RoleTitle: "Software Engineer", Timezone: "Asia/Kolkata", StartDate: startDate,
			HiringManagerID: "mgr_001", ReportingManagerID: "mgr_002", HRBPID: "mgr_003",
		},
		{
			ID: "cand_002", Name: "Emily Park", Email: "emily.park@example.com",
			RoleTitle: "Product Designer", Timezone: "America/Los_Angeles", StartDate: startDate.AddDate(0, 0, 7),
			HiringManagerID: "mgr_002", ReportingManagerID: "mgr_004", HRBPID: "mgr_003",
		},
	}

	for i := range managers {
		if err := repo.UpsertManager(ctx, &managers[i]); err != nil {
			return err
		}
	}
	for i := range candidates {
		if err := repo.UpsertCandidate(ctx, &candidates[i]); err != nil {
			return err
		}
	}

	logger.Info("Directory demo data seeded",
		"managers", len(managers), "candidates", len(candidates))
	return nil
}
