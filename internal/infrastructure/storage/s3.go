package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/novelhub/backend/internal/application/reading"
	infraconfig "github.com/novelhub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3ContentStore implements ChapterContentStore
var _ reading.ChapterContentStore = (*S3ContentStore)(nil)

// S3ContentStore reads chapter content from an S3-compatible object store.
// It works with AWS S3, MinIO and other S3-compatible backends.
type S3ContentStore struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// S3ContentStoreOption is a functional option for configuring S3ContentStore
type S3ContentStoreOption func(*S3ContentStore)

// WithLogger sets a custom logger for S3ContentStore
func WithLogger(logger *zap.Logger) S3ContentStoreOption {
	return func(s *S3ContentStore) {
		s.logger = logger
	}
}

// NewS3ContentStore creates a new S3ContentStore from configuration
func NewS3ContentStore(cfg *infraconfig.S3Config, opts ...S3ContentStoreOption) (*S3ContentStore, error) {
	if cfg == nil {
		return nil, errors.New("s3 configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("s3 access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("s3 secret key is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:9000"
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if cfg.UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid s3 endpoint: %w", err)
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(endpoint)
	})

	store := &S3ContentStore{
		client: client,
		bucket: cfg.Bucket,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Read downloads the object at key and returns it as a string
func (s *S3ContentStore) Read(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("content key is required")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get content object: %w", err)
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil {
			s.logger.Warn("failed to close object body", zap.Error(cerr))
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read content object: %w", err)
	}
	return string(data), nil
}

// Exists checks whether an object is present at key
func (s *S3ContentStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("content key is required")
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check content object: %w", err)
	}
	return true, nil
}
