package schemasource_test

import (
	"context"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/incoming/pkg/schemasource"
)

// fakeS3 serves objects from memory, two keys per page.
type fakeS3 struct {
	objects map[string]string
	listErr error
	getErr  error
	headErr error
	prefix  *string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.prefix = in.Prefix

	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	// Reverse order, so the source has to sort.
	slices.Sort(keys)
	slices.Reverse(keys)

	start := 0
	if in.ContinuationToken != nil {
		for i, k := range keys {
			if k == *in.ContinuationToken {
				start = i
			}
		}
	}
	end := min(start+2, len(keys))

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(keys[end])
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestS3(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a bucket", func(t *testing.T) {
		_, err := schemasource.NewS3(&fakeS3{}, "", "")
		assert.ErrorIs(t, err, schemasource.ErrMissingBucket)
	})

	t.Run("pages through documents in key order", func(t *testing.T) {
		client := &fakeS3{objects: map[string]string{
			"schemas/a-tag.yaml":  tagDoc,
			"schemas/b-post.yml":  postDoc,
			"schemas/c.json":      `{"schemas": [{"name": "c", "fields": [{"name": "x", "type": "integer"}]}]}`,
			"schemas/readme.md":   "# not a schema",
			"schemas/d-note.yaml": "schemas: [{name: note, fields: [{name: body, type: string}]}]",
			"other/skip.yaml":     tagDoc,
		}}
		src, err := schemasource.NewS3(client, "config", "schemas/")
		require.NoError(t, err)
		assert.Equal(t, "s3://config/schemas", src.String())

		docs, err := src.Fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, "schemas/", aws.ToString(client.prefix))

		names := make([]string, len(docs))
		for i, d := range docs {
			names[i] = d.Name
		}
		assert.Equal(t, []string{"schemas/a-tag.yaml", "schemas/b-post.yml", "schemas/c.json", "schemas/d-note.yaml"}, names)

		reg, err := schemasource.Load(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, []string{"tag", "post", "c", "note"}, reg.Names())
	})

	t.Run("empty prefix", func(t *testing.T) {
		src, err := schemasource.NewS3(&fakeS3{objects: map[string]string{"readme.md": ""}}, "config", "")
		require.NoError(t, err)
		_, err = src.Fetch(ctx)
		assert.ErrorIs(t, err, schemasource.ErrNoDocuments)
	})

	t.Run("missing bucket", func(t *testing.T) {
		src, err := schemasource.NewS3(&fakeS3{listErr: &types.NoSuchBucket{Message: aws.String("gone")}}, "config", "")
		require.NoError(t, err)
		_, err = src.Fetch(ctx)
		assert.ErrorIs(t, err, schemasource.ErrFetchFailed)
		assert.ErrorIs(t, err, schemasource.ErrNotFound)
	})

	t.Run("service error code is reported", func(t *testing.T) {
		denied := &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"}
		src, err := schemasource.NewS3(&fakeS3{
			objects: map[string]string{"a.yaml": tagDoc},
			getErr:  denied,
		}, "config", "")
		require.NoError(t, err)

		_, err = src.Fetch(ctx)
		assert.ErrorIs(t, err, schemasource.ErrFetchFailed)
		assert.ErrorIs(t, err, denied)
		assert.NotErrorIs(t, err, schemasource.ErrNotFound)
		assert.Contains(t, err.Error(), "AccessDenied")
		assert.Contains(t, err.Error(), "get a.yaml")
	})

	t.Run("check", func(t *testing.T) {
		src, err := schemasource.NewS3(&fakeS3{}, "config", "")
		require.NoError(t, err)
		assert.NoError(t, src.Check(ctx))

		src, err = schemasource.NewS3(&fakeS3{headErr: &types.NotFound{}}, "config", "")
		require.NoError(t, err)
		assert.ErrorIs(t, src.Check(ctx), schemasource.ErrNotFound)
	})
}
