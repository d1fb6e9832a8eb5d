// internal/adapters/out/firestore/helper_repository_fs_test.go
package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "", asString(nil))
	assert.Equal(t, "mug", asString("mug"))
	assert.Equal(t, "42", asString(42))
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 0, asInt(nil))
	assert.Equal(t, 3, asInt(3))
	assert.Equal(t, 3, asInt(int64(3)))
	assert.Equal(t, 3, asInt(3.0))
	assert.Equal(t, 3, asInt("3"))
	assert.Equal(t, 0, asInt("  "))
	assert.Equal(t, 0, asInt("mug"))
}

func TestAsTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, ok := asTime(now)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	// legacy web-client rows stored ISO strings
	got, ok = asTime("2025-06-01T12:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, now, got)

	_, ok = asTime(nil)
	assert.False(t, ok)

	_, ok = asTime("yesterday")
	assert.False(t, ok)

	_, ok = asTime(12345)
	assert.False(t, ok)
}
