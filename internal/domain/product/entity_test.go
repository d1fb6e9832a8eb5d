// internal/domain/product/entity_test.go
package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_TrimsAndStamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p, err := New("  Mug  ", " A sturdy mug ", " $12.00 ", "https://example.com/mug.png", "seller@hanyang.ac.kr", now)
	assert.NoError(t, err)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, "A sturdy mug", p.Description)
	assert.Equal(t, "$12.00", p.Price)
	assert.Equal(t, "https://example.com/mug.png", p.ImageURL)
	assert.Equal(t, "seller@hanyang.ac.kr", p.AddedBy)
	assert.Equal(t, now, p.AddedAt)
	assert.Empty(t, p.ID, "id is store-assigned, not set by the constructor")
}

func TestNew_MissingFields(t *testing.T) {
	now := time.Now()

	_, err := New("", "desc", "$1", "", "", now)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = New("name", "   ", "$1", "", "", now)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = New("name", "desc", "", "", "", now)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNew_Defaults(t *testing.T) {
	p, err := New("Mug", "A mug", "$12.00", "", "", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, PlaceholderImagePath, p.ImageURL)
	assert.Equal(t, AnonymousSeller, p.AddedBy)
}
