package supabase

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Buckets the site stores files in.
const (
	BucketExcursions = "excursiones"
	BucketProfiles   = "perfiles"
	BucketGeneral    = "general"
	BucketGallery    = "galeria"
)

// StorageObject is one stored file as the list endpoint reports it.
type StorageObject struct {
	Name      string    `json:"name"`
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Upload stores data under bucket/path and returns the public URL.
func (c *Client) Upload(ctx context.Context, bucket, path, contentType string, data []byte) (string, error) {
	endpoint := c.baseURL + "/storage/v1/object/" + url.PathEscape(bucket) + "/" + escapePath(path)

	headers := map[string]string{"Content-Type": contentType}
	resp, err := c.request(ctx, http.MethodPost, endpoint, headers, bytes.NewReader(data), bearerFrom(ctx))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", apiError(resp.StatusCode, raw)
	}
	return c.PublicURL(bucket, path), nil
}

// List returns the objects under prefix in the bucket.
func (c *Client) List(ctx context.Context, bucket, prefix string) ([]StorageObject, error) {
	endpoint := c.baseURL + "/storage/v1/object/list/" + url.PathEscape(bucket)
	payload := map[string]any{"prefix": prefix}

	var out []StorageObject
	if err := c.requestJSON(ctx, http.MethodPost, endpoint, nil, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicURL resolves the CDN URL of an object in a public bucket. Pure
// string assembly; no network call.
func (c *Client) PublicURL(bucket, path string) string {
	return c.baseURL + "/storage/v1/object/public/" + url.PathEscape(bucket) + "/" + escapePath(path)
}

// escapePath escapes each path segment but keeps the separators.
func escapePath(p string) string {
	out := ""
	for i, seg := range splitPath(p) {
		if i > 0 {
			out += "/"
		}
		out += url.PathEscape(seg)
	}
	return out
}

func splitPath(p string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			segs = append(segs, p[start:i])
			start = i + 1
		}
	}
	return append(segs, p[start:])
}
