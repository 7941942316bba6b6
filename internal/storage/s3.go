package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/clinicstack/clinic-manager/internal/config"
)

// BlobStore wraps the object-storage bucket holding patient report files.
type BlobStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	log     *zap.Logger
}

func NewBlobStore(cfg *config.Config, log *zap.Logger) *BlobStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &BlobStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		log:     log,
	}
}

// ReportPath namespaces a patient upload: reports/{patientId}/{ts}-{name}.
func ReportPath(patientID, filename string, now time.Time) string {
	return fmt.Sprintf("reports/%s/%d-%s", patientID, now.UnixMilli(), filename)
}

func (b *BlobStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		b.log.Error("blob upload failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SignedURL returns a short-lived GET url for a stored blob.
func (b *BlobStore) SignedURL(ctx context.Context, path string) (string, error) {
	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
