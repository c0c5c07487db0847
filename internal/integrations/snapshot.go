package integrations

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"summerfest/backend/internal/config"
)

// SnapshotArchiver dumps the most recent raw provider event response for
// inspection: always to a local JSON file, and additionally to S3 when a
// bucket is configured. Both sinks are best-effort.
type SnapshotArchiver struct {
	file   string
	bucket string
	client *s3.Client
	logger *slog.Logger
}

func NewSnapshotArchiver(snap config.SnapshotConfig, s3cfg config.S3Config, logger *slog.Logger) *SnapshotArchiver {
	if logger == nil {
		logger = slog.Default()
	}
	archiver := &SnapshotArchiver{file: snap.File, logger: logger}

	if s3cfg.Bucket != "" {
		options := s3.Options{
			Region:       s3cfg.Region,
			Credentials:  credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, ""),
			UsePathStyle: true,
		}
		if endpoint := normalizeEndpoint(s3cfg.Endpoint, s3cfg.UseSSL); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
		archiver.bucket = s3cfg.Bucket
		archiver.client = s3.New(options)
	}

	return archiver
}

// Save writes the raw response to the configured sinks. Failures are logged,
// never surfaced: a broken snapshot sink must not break the debug endpoint.
func (a *SnapshotArchiver) Save(ctx context.Context, raw []byte) {
	if a == nil {
		return
	}
	if a.file != "" {
		if err := os.WriteFile(a.file, raw, 0o644); err != nil {
			a.logger.Warn("snapshot file write failed", "path", a.file, "error", err)
		}
	}
	if a.client != nil {
		key := snapshotKey(time.Now().UTC())
		_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(a.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(raw),
			ContentType:   aws.String("application/json"),
			ContentLength: aws.Int64(int64(len(raw))),
		})
		if err != nil {
			a.logger.Warn("snapshot upload failed", "bucket", a.bucket, "key", key, "error", err)
		}
	}
}

func snapshotKey(now time.Time) string {
	return fmt.Sprintf("snapshots/%d/%02d/%02d/event-%d.json", now.Year(), now.Month(), now.Day(), now.UnixNano())
}

func normalizeEndpoint(endpoint string, useSSL bool) string {
	if endpoint == "" {
		return ""
	}
	if strings.HasPrefix(endpoint, "http") {
		return endpoint
	}
	scheme := "https"
	if !useSSL {
		scheme = "http"
	}
	return scheme + "://" + endpoint
}
