// internal/adapters/out/gcs/image_resolver_test.go
package gcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_EmptyUsesPlaceholder(t *testing.T) {
	r := NewProductImageResolver(nil, "bkt", "/default-image.png")

	assert.Equal(t, "/default-image.png", r.Resolve(context.Background(), ""))
	assert.Equal(t, "/default-image.png", r.Resolve(context.Background(), "   "))
}

func TestResolve_HTTPAndFrontendPathsPassThrough(t *testing.T) {
	r := NewProductImageResolver(nil, "bkt", "/default-image.png")

	assert.Equal(t, "https://example.com/x.png", r.Resolve(context.Background(), "https://example.com/x.png"))
	assert.Equal(t, "/default-image.png", r.Resolve(context.Background(), "/default-image.png"))
	assert.Equal(t, "/assets/mug.png", r.Resolve(context.Background(), "/assets/mug.png"))
}

func TestResolve_GSURLBecomesPublicURL(t *testing.T) {
	r := NewProductImageResolver(nil, "bkt", "/default-image.png")

	got := r.Resolve(context.Background(), "gs://other-bucket/mugs/blue.png")
	assert.Equal(t, "https://storage.googleapis.com/other-bucket/mugs/blue.png", got)
}

func TestResolve_BareObjectPathWithoutClient(t *testing.T) {
	// no client: skip the existence check, still build the public URL
	r := NewProductImageResolver(nil, "bkt", "/default-image.png")

	got := r.Resolve(context.Background(), "mugs/blue.png")
	assert.Equal(t, "https://storage.googleapis.com/bkt/mugs/blue.png", got)
}

func TestParseGCSURL(t *testing.T) {
	b, obj, ok := parseGCSURL("gs://bkt/a/b.png")
	assert.True(t, ok)
	assert.Equal(t, "bkt", b)
	assert.Equal(t, "a/b.png", obj)

	b, obj, ok = parseGCSURL("https://storage.googleapis.com/bkt/a%20b.png")
	assert.True(t, ok)
	assert.Equal(t, "bkt", b)
	assert.Equal(t, "a b.png", obj)

	_, _, ok = parseGCSURL("https://example.com/bkt/a.png")
	assert.False(t, ok)

	_, _, ok = parseGCSURL("gs://bkt-only")
	assert.False(t, ok)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/bkt/a.png", publicURL("bkt", "/a.png"))
}
