package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

type S3 struct {
	client *s3.Client
	cfg    S3Config
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("aws config load failed: %w", err)
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	return &S3{client: s3.NewFromConfig(awsCfg), cfg: cfg}, nil
}

func (s *S3) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	if err := CheckImage(in); err != nil {
		return PutResult{}, err
	}

	key := monthKey(in.Filename)
	if s.cfg.Prefix != "" {
		key = s.cfg.Prefix + "/" + key
	}

	cacheControl := "public, max-age=31536000, immutable" // les clés sont uniques
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       &s.cfg.Bucket,
		Key:          &key,
		Body:         r,
		ContentType:  &in.ContentType,
		CacheControl: &cacheControl,
	})
	if err != nil {
		return PutResult{}, fmt.Errorf("s3 put %s failed: %w", key, err)
	}

	return PutResult{Key: key, URL: s.cfg.PublicBaseURL + "/" + key}, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s failed: %w", key, err)
	}
	return nil
}

func (s *S3) String() string { return fmt.Sprintf("s3(%s/%s)", s.cfg.Bucket, s.cfg.Prefix) }
