// Package blobstore duplicates binary assets: it fetches bytes from a
// source URL and writes them under a new key in a gocloud bucket.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// driver
	_ "gocloud.dev/blob/s3blob"   // s3:// driver

	"storefront/internal/pkg/errs"
)

type Store struct {
	bucket        *blob.Bucket
	publicBaseURL string
	client        *http.Client
}

// NewStore opens the bucket behind bucketURL. fetchTimeout bounds every
// single source fetch so one unreachable asset cannot stall a batch.
func NewStore(ctx context.Context, bucketURL, publicBaseURL string, fetchTimeout time.Duration) (*Store, func(), error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open bucket %s: %w", bucketURL, err)
	}

	s := &Store{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		client:        &http.Client{Timeout: fetchTimeout},
	}
	cleanup := func() { _ = bucket.Close() }
	return s, cleanup, nil
}

// NewStoreWithBucket injects an already-open bucket; tests pass memblob here.
func NewStoreWithBucket(bucket *blob.Bucket, publicBaseURL string, fetchTimeout time.Duration) *Store {
	return &Store{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		client:        &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch downloads the asset bytes behind sourceURL.
func (s *Store) Fetch(ctx context.Context, sourceURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", errs.Wrapf(err, "build fetch request for %s", sourceURL)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", errs.Wrapf(err, "fetch asset %s", sourceURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errs.New(fmt.Sprintf("fetch asset %s: unexpected status %d", sourceURL, resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errs.Wrapf(err, "read asset body %s", sourceURL)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Put writes data under key and returns the public URL of the stored copy.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	w, err := s.bucket.NewWriter(ctx, key, opts)
	if err != nil {
		return "", errs.Wrapf(err, "create writer for %s", key)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", errs.Wrapf(err, "write data to %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errs.Wrapf(err, "close writer for %s", key)
	}
	return s.publicBaseURL + "/" + key, nil
}
