package catalog

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"gamegestor/core/storage"

	"github.com/minio/minio-go/v7"
)

// CoverMirror copies remote cover images into the configured object storage
// bucket so the service does not depend on provider CDN availability.
type CoverMirror struct {
	client storage.Client
	bucket string
	http   *http.Client
}

// NewCoverMirror creates a mirror writing into the given bucket.
func NewCoverMirror(client storage.Client, bucket string) *CoverMirror {
	return &CoverMirror{
		client: client,
		bucket: bucket,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// EnsureBucket creates the target bucket when it does not exist yet.
func (m *CoverMirror) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", m.bucket, err)
	}
	return nil
}

// Mirror downloads coverURL and stores it under covers/<gameID><ext>.
func (m *CoverMirror) Mirror(ctx context.Context, gameID uint, coverURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return fmt.Errorf("building cover request: %w", err)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("downloading cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cover download returned status %d", resp.StatusCode)
	}

	ext := path.Ext(coverURL)
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("covers/%d%s", gameID, ext)

	_, err = m.client.PutObject(ctx, m.bucket, objectName, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: resp.Header.Get("Content-Type"),
	})
	if err != nil {
		return fmt.Errorf("storing cover object: %w", err)
	}
	return nil
}
