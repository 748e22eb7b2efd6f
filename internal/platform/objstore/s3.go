// Package objstore stores report payloads in an S3-compatible bucket
// (Supabase Storage exposes an S3 endpoint).
package objstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/buffapp/adsync/pkg/config"
)

// Store uploads report payloads with overwrite-if-exists semantics.
type Store struct {
	client *s3.Client
	bucket string
	log    *zap.SugaredLogger
}

func NewStore(cfg *cfgpkg.Config, log *zap.SugaredLogger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey, cfg.Storage.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			// Supabase Storage does not support virtual-hosted bucket addressing.
			o.UsePathStyle = true
		}
	})

	return &Store{client: client, bucket: cfg.Storage.Bucket, log: log}, nil
}

// Put writes an object, replacing any existing content at the key.
func (s *Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.log.Infow("uploaded object", "key", key, "bytes", len(body))
	return nil
}

var Module = fx.Options(
	fx.Provide(NewStore),
)
