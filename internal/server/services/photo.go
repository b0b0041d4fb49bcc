package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dmitrijs2005/rentboard/internal/server/config"
)

// Indirection points so tests can stub out AWS calls.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PhotoService attaches photos to properties. The bytes live in
// S3-compatible storage; clients upload and download through short-lived
// presigned URLs, the database only records the storage keys.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *PhotoService {
	return &PhotoService{
		db:          db,
		repomanager: m,
		config:      config,
	}
}

// PhotoLink pairs a stored photo with a presigned URL for it.
type PhotoLink struct {
	Photo *models.PropertyPhoto
	URL   string
}

func photoStorageKey(propertyID int64) string {
	return fmt.Sprintf("properties/%d/%v", propertyID, uuid.New())
}

func (s *PhotoService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// RequestUpload allocates a storage key for a new photo, records it, and
// returns a presigned PUT URL the client uploads the bytes to.
func (s *PhotoService) RequestUpload(ctx context.Context, propertyID int64) (*models.PropertyPhoto, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, "", err
	}

	photo := &models.PropertyPhoto{
		PropertyID: propertyID,
		StorageKey: photoStorageKey(propertyID),
	}

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(photo.StorageKey),
	}, func(o *s3.PresignOptions) {
		o.Expires = 15 * time.Minute
	})
	if err != nil {
		return nil, "", fmt.Errorf("presign put: %w", err)
	}

	photo, err = s.repomanager.Photos(s.db).Create(ctx, photo)
	if err != nil {
		return nil, "", err
	}

	return photo, req.URL, nil
}

// List returns the property's photos, each with a presigned GET URL.
func (s *PhotoService) List(ctx context.Context, propertyID int64) ([]PhotoLink, error) {
	photos, err := s.repomanager.Photos(s.db).ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, nil
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	result := make([]PhotoLink, 0, len(photos))
	for _, photo := range photos {
		req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.config.S3Bucket),
			Key:    aws.String(photo.StorageKey),
		}, func(o *s3.PresignOptions) {
			o.Expires = 15 * time.Minute
		})
		if err != nil {
			return nil, fmt.Errorf("presign get: %w", err)
		}
		result = append(result, PhotoLink{Photo: photo, URL: req.URL})
	}

	return result, nil
}
