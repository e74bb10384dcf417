package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"scheduling-agent/core/config"
	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/utils"
	"scheduling-agent/modules/directory/dto"
	"scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/directory/repository"
)

// s3Uploader is the slice of the S3 client used here, kept narrow so
// tests can stub it
type s3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DocumentService stores candidate onboarding documents in S3 and
// records them in the database
type DocumentService struct {
	repo     repository.DirectoryRepositoryInterface
	uploader s3Uploader
	bucket   string
}

type DocumentServiceInterface interface {
	UploadDocument(ctx context.Context, candidateID, fileName, contentType string, size int64, body io.Reader) (*dto.DocumentResponse, *errors.AppError)
	ListDocuments(ctx context.Context, candidateID string) ([]dto.DocumentResponse, *errors.AppError)
}

func NewDocumentService(repo repository.DirectoryRepositoryInterface, cfg config.StorageConfig) DocumentServiceInterface {
	return &DocumentService{
		repo:     repo,
		uploader: newS3Client(cfg),
		bucket:   cfg.Bucket,
	}
}

// NewDocumentServiceWithUploader wires a custom uploader, used by tests
func NewDocumentServiceWithUploader(repo repository.DirectoryRepositoryInterface, uploader s3Uploader, bucket string) DocumentServiceInterface {
	return &DocumentService{repo: repo, uploader: uploader, bucket: bucket}
}

func newS3Client(cfg config.StorageConfig) *s3.Client {
	options := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	// A custom endpoint means a local S3-compatible store; those want
	// path-style addressing.
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = true
	}
	return s3.New(options)
}

func (s *DocumentService) UploadDocument(ctx context.Context, candidateID, fileName, contentType string, size int64, body io.Reader) (*dto.DocumentResponse, *errors.AppError) {
	if candidateID == "" || fileName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "candidate id and file name are required", nil)
	}

	suffix := utils.GenerateRandomString(8)
	objectKey := path.Join("candidates", candidateID, fmt.Sprintf("%s-%s", suffix, fileName))

	_, err := s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.Error("DocumentService:UploadDocument:PutObject:Error",
			"candidate_id", candidateID, "key", objectKey, "error", err)
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "Failed to store document", err)
	}

	created, err := s.repo.CreateDocument(ctx, &entity.CandidateDocument{
		CandidateID: candidateID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   size,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record document", err)
	}

	return dto.ToDocumentResponse(created), nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, candidateID string) ([]dto.DocumentResponse, *errors.AppError) {
	docs, err := s.repo.GetDocumentsByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list documents", err)
	}

	responses := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, *dto.ToDocumentResponse(&docs[i]))
	}
	return responses, nil
}
