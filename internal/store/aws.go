package store

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// ObjectPutter is the part of the S3 client S3Saver uses.
type ObjectPutter interface {
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Saver struct {
	Client ObjectPutter
	Bucket string
}

func NewS3Saver(i *do.Injector) (Saver, error) {
	return &S3Saver{
		Client: do.MustInvoke[*s3.Client](i),
		Bucket: do.MustInvokeNamed[string](i, "download_bucket"),
	}, nil
}

func (s *S3Saver) Save(ctx context.Context, params SaveParams) (string, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("s3").With(
		"name", params.Name,
		"content-type", params.ContentType,
		"bucket", s.Bucket,
	)
	log.Info("uploading to s3")

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(params.Name),
		ContentType: aws.String(params.ContentType),
		Body:        bytes.NewReader(params.Data),
		Metadata:    encodeMetadata(params.Metadata),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.Bucket, params.Name, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.Bucket, params.Name), nil
}

// encodeMetadata query-escapes values. S3 sends user metadata as headers,
// which reject newlines and need non-ASCII text encoded.
func encodeMetadata(md map[string]string) map[string]string {
	if md == nil {
		return nil
	}
	return lo.MapValues(md, func(v string, _ string) string {
		return url.QueryEscape(v)
	})
}
