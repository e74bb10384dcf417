package controller

import (
	"fmt"
	"time"

	"scheduling-agent/core/config"
	"scheduling-agent/core/controller"
	"scheduling-agent/core/errors"
	availabilityService "scheduling-agent/modules/availability/service"
	"scheduling-agent/modules/calendar/dto"
	"scheduling-agent/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// CalendarController handles calendar HTTP requests
type CalendarController struct {
	controller.BaseController
	CalendarService     service.CalendarServiceInterface
	AvailabilityService availabilityService.AvailabilityServiceInterface
}

// NewCalendarController creates a new controller
func NewCalendarController(calendarSvc service.CalendarServiceInterface, availabilitySvc availabilityService.AvailabilityServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController:      controller.NewBaseController(),
		CalendarService:     calendarSvc,
		AvailabilityService: availabilitySvc,
	}
}

// GetBusyTimeline handles GET /calendar/:personId/busy
// @Summary Get a person's merged busy timeline
// @Description Merges the primary and override calendars with override-wins priority
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param personId path string true "Person ID"
// @Param start query string false "Window start date (YYYY-MM-DD, default today)"
// @Param days query int false "Window length in days (default 7)"
// @Success 200 {object} dto.BusyTimelineResponse
// @Failure 400 {object} errors.AppError
// @Router /private/calendar/{personId}/busy [get]
func (c *CalendarController) GetBusyTimeline(ctx echo.Context) error {
	windowStart, windowEnd, err := parseWindow(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.CalendarService.GetBusyTimeline(ctx.Request().Context(), ctx.Param("personId"), windowStart, windowEnd)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetFreeTime handles GET /calendar/:personId/free
// @Summary Get a person's free slots within business hours
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param personId path string true "Person ID"
// @Param start query string false "Window start date (YYYY-MM-DD, default today)"
// @Param days query int false "Window length in days (default 7)"
// @Success 200 {object} dto.FreeTimeResponse
// @Failure 400 {object} errors.AppError
// @Router /private/calendar/{personId}/free [get]
func (c *CalendarController) GetFreeTime(ctx echo.Context) error {
	windowStart, windowEnd, err := parseWindow(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	cfg := config.Get().Scheduling
	personID := ctx.Param("personId")

	slots, appErr := c.AvailabilityService.ResolveFreeTime(ctx.Request().Context(), personID,
		windowStart, windowEnd, cfg.BusinessHoursStart, cfg.BusinessHoursEnd)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	free := make([]dto.IntervalResponse, 0, len(slots))
	for _, slot := range slots {
		free = append(free, dto.IntervalResponse{Start: slot.Interval.Start, End: slot.Interval.End})
	}

	return c.SuccessResponse(ctx, &dto.FreeTimeResponse{
		PersonID:    personID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Free:        free,
	}, "Success")
}

// parseWindow reads the start/days query params into a UTC window
func parseWindow(ctx echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if raw := ctx.QueryParam("start"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start must be YYYY-MM-DD")
		}
		start = parsed
	}

	days := 7
	if raw := ctx.QueryParam("days"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("days", &days).BindError(); err != nil || days <= 0 {
			return time.Time{}, time.Time{}, fmt.Errorf("days must be a positive integer")
		}
	}

	return start, start.AddDate(0, 0, days), nil
}
