package schemasource

import "errors"

var (
	ErrUnknownSource   = errors.New("unknown schema source")
	ErrMissingBucket   = errors.New("s3 bucket is required")
	ErrNoDocuments     = errors.New("no schema documents found")
	ErrFetchFailed     = errors.New("failed to fetch schema documents")
	ErrNotFound        = errors.New("schema location not found")
	ErrRedisURL        = errors.New("failed to parse redis connection string")
	ErrRedisNotReady   = errors.New("redis did not become ready within the given time period")
	ErrRedisUnhealthy  = errors.New("redis healthcheck failed")
	ErrS3ClientFailure = errors.New("failed to create s3 client")
)
