package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/learning-notifier/learning-notifier/internal/config"
	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// TopicArchive keeps a raw-markdown copy of every generated topic in
// S3-compatible object storage. It is an optional capability: archive
// failures are logged and never surface to the generation path.
type TopicArchive struct {
	client *minio.Client
	bucket string
}

// New creates the archive client and ensures the bucket exists.
func New(cfg config.MinIOConfig) (*TopicArchive, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	a := &TopicArchive{client: mc, bucket: cfg.Bucket}

	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, a.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return a, nil
}

// ArchiveTopic uploads the raw generated text under topics/<id>.md.
func (a *TopicArchive) ArchiveTopic(ctx context.Context, c *models.Content) {
	key := fmt.Sprintf("topics/%s.md", c.ID.Hex())
	reader := strings.NewReader(c.Content)
	_, err := a.client.PutObject(ctx, a.bucket, key, reader, int64(len(c.Content)),
		minio.PutObjectOptions{ContentType: "text/markdown"})
	if err != nil {
		logger.Errorf("failed to archive topic %s: %v", c.ID.Hex(), err)
		return
	}
	logger.Infof("topic archived: %s", key)
}
