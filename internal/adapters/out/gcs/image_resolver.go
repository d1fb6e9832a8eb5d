// internal/adapters/out/gcs/image_resolver.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
)

// ProductImageResolver resolves a product's stored imageUrl into something the
// frontend can render.
//
// The stored value can be:
// - http(s)://...                       -> returned as-is (manually entered URL)
// - /default-image.png or another path  -> returned as-is (frontend asset)
// - objectPath within the image bucket  -> resolved to a public GCS URL;
//   if the object does not exist the placeholder is returned instead
type ProductImageResolver struct {
	Client      *storage.Client
	Bucket      string
	Placeholder string
}

func NewProductImageResolver(client *storage.Client, bucket, placeholder string) *ProductImageResolver {
	return &ProductImageResolver{
		Client:      client,
		Bucket:      strings.TrimSpace(bucket),
		Placeholder: strings.TrimSpace(placeholder),
	}
}

func (r *ProductImageResolver) Resolve(ctx context.Context, stored string) string {
	p := strings.TrimSpace(stored)
	if p == "" {
		return r.Placeholder
	}

	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}

	// frontend-relative asset (the placeholder itself lands here)
	if strings.HasPrefix(p, "/") {
		return p
	}

	if b, obj, ok := parseGCSURL(p); ok {
		return publicURL(b, obj)
	}

	// bare object path within the configured bucket
	if r.Client == nil || r.Bucket == "" {
		return publicURL(r.Bucket, p)
	}

	_, err := r.Client.Bucket(r.Bucket).Object(p).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return r.Placeholder
		}
		log.Printf("[image_resolver] WARN: attrs lookup failed bucket=%s object=%s err=%v", r.Bucket, p, err)
	}
	return publicURL(r.Bucket, p)
}

// publicURL builds a public GCS URL.
func publicURL(bucket, objectPath string) string {
	b := strings.TrimSpace(bucket)
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b, obj)
}

// parseGCSURL parses a GCS-like URL and returns (bucket, objectPath, ok).
// Accepts gs://bucket/object and storage.googleapis.com forms.
func parseGCSURL(u string) (string, string, bool) {
	u = strings.TrimSpace(u)

	if strings.HasPrefix(u, "gs://") {
		rest := strings.TrimPrefix(u, "gs://")
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return "", "", false
	}

	host := strings.ToLower(parsed.Host)
	if host != "storage.googleapis.com" && host != "storage.cloud.google.com" {
		return "", "", false
	}

	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	objectPath, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	return parts[0], objectPath, true
}
