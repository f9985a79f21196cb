package persistent

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/andreyxaxa/ooh-proofs/pkg/s3client"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoStorage keeps original and rendered proof photos in one bucket.
type PhotoStorage struct {
	*s3client.S3Client
	bucket string
}

func NewPhotoStorage(s3c *s3client.S3Client, bucket string) *PhotoStorage {
	return &PhotoStorage{s3c, bucket}
}

func (r *PhotoStorage) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("PhotoStorage - UploadBytes - r.Client.PutObject: %w", err)
	}

	return nil
}

// Download returns the object body; the caller closes it.
func (r *PhotoStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("PhotoStorage - Download - r.Client.GetObject: %w", err)
	}

	return result.Body, nil
}

func (r *PhotoStorage) DownloadBytes(ctx context.Context, key string) ([]byte, error) {
	body, err := r.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("PhotoStorage - DownloadBytes - r.Download: %w", err)
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("PhotoStorage - DownloadBytes - io.ReadAll: %w", err)
	}

	return b, nil
}

func (r *PhotoStorage) Delete(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("PhotoStorage - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}
