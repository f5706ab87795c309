package schemasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/incoming/pkg/schemafile"
)

// S3Client is the subset of *s3.Client the S3 source uses.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Config locates schema documents in a bucket. Every object under Prefix
// with a .yaml, .yml or .json extension is loaded.
type S3Config struct {
	Bucket         string `env:"INCOMING_S3_BUCKET"`
	Prefix         string `env:"INCOMING_S3_PREFIX"`
	Region         string `env:"INCOMING_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"INCOMING_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"INCOMING_S3_SECRET_KEY"`
	Endpoint       string `env:"INCOMING_S3_ENDPOINT"`         // for S3-compatible services
	ForcePathStyle bool   `env:"INCOMING_S3_FORCE_PATH_STYLE"` // MinIO and friends
}

// NewS3Client creates an S3 client from cfg. Static credentials are used when
// both keys are set, the default AWS credential chain otherwise.
func NewS3Client(ctx context.Context, cfg S3Config, optFns ...func(*config.LoadOptions) error) (*s3.Client, error) {
	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	awsOptions = append(awsOptions, optFns...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, errors.Join(ErrS3ClientFailure, err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

// S3 reads schema documents stored under a bucket prefix.
type S3 struct {
	client S3Client
	bucket string
	prefix string
}

func NewS3(client S3Client, bucket, prefix string) (*S3, error) {
	if bucket == "" {
		return nil, ErrMissingBucket
	}
	return &S3{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *S3) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

// Fetch lists the prefix and downloads every document in key order.
func (s *S3) Fetch(ctx context.Context) ([]schemafile.Raw, error) {
	keys, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNoDocuments
	}

	docs := make([]schemafile.Raw, 0, len(keys))
	for _, key := range keys {
		content, err := s.get(ctx, key)
		if err != nil {
			return nil, err
		}
		docs = append(docs, schemafile.Raw{Name: key, Content: content})
	}
	return docs, nil
}

// Check reports whether the bucket is reachable.
func (s *S3) Check(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return s3Error("head bucket", err)
	}
	return nil
}

func (s *S3) list(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix)
	}

	var keys []string
	pages := s3.NewListObjectsV2Paginator(s.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, s3Error("list objects", err)
		}
		for _, obj := range page.Contents {
			if key := aws.ToString(obj.Key); isDocument(key) {
				keys = append(keys, key)
			}
		}
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *S3) get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s3Error("get "+key, err)
	}
	defer func() { _ = out.Body.Close() }()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read %s: %w", key, err))
	}
	return content, nil
}

func isDocument(key string) bool {
	switch path.Ext(key) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// s3Error keeps the service error code in the message.
func s3Error(op string, err error) error {
	var (
		noKey    *types.NoSuchKey
		noBucket *types.NoSuchBucket
		notFound *types.NotFound
		apiErr   smithy.APIError
	)
	switch {
	case errors.As(err, &noKey), errors.As(err, &noBucket), errors.As(err, &notFound):
		return fmt.Errorf("%w: %w: %s: %w", ErrFetchFailed, ErrNotFound, op, err)
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: %s: %s: %w", ErrFetchFailed, op, apiErr.ErrorCode(), err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, op, err)
	}
}
