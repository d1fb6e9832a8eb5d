// internal/domain/product/price_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice_StripsCurrencyAndSeparators(t *testing.T) {
	v, err := ParsePrice("$25.00")
	assert.NoError(t, err)
	assert.Equal(t, 25.0, v)

	v, err = ParsePrice("₩9,900")
	assert.NoError(t, err)
	assert.Equal(t, 9900.0, v)

	v, err = ParsePrice(" 1,250.50 ")
	assert.NoError(t, err)
	assert.Equal(t, 1250.50, v)
}

func TestParsePrice_Unparsable(t *testing.T) {
	for _, in := range []string{"", "free", "-", "ask seller", "$"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrUnparsablePrice, "input=%q", in)
	}
}

func TestParsePrice_Negative(t *testing.T) {
	v, err := ParsePrice("-5.50")
	assert.NoError(t, err)
	assert.Equal(t, -5.50, v)
}

func TestSort_ByPrice_NumericNotLexicographic(t *testing.T) {
	items := []Product{
		{ID: "a", Name: "A", Price: "$15"},
		{ID: "b", Name: "B", Price: "$9.99"},
		{ID: "c", Name: "C", Price: "$100"},
	}

	Sort(items, SortByPrice)

	assert.Equal(t, []string{"b", "a", "c"}, ids(items))
}

func TestSort_ByPrice_UnparsableSinksToEnd(t *testing.T) {
	items := []Product{
		{ID: "a", Price: "free"},
		{ID: "b", Price: "$3"},
		{ID: "c", Price: "ask"},
		{ID: "d", Price: "$1"},
	}

	Sort(items, SortByPrice)

	assert.Equal(t, []string{"d", "b", "a", "c"}, ids(items))
}

func TestSort_ByName(t *testing.T) {
	items := []Product{
		{ID: "1", Name: "mug"},
		{ID: "2", Name: "apple"},
		{ID: "3", Name: "zine"},
	}

	Sort(items, SortByName)

	assert.Equal(t, []string{"2", "1", "3"}, ids(items))
}

func TestSort_Default_Untouched(t *testing.T) {
	items := []Product{
		{ID: "z", Name: "z", Price: "$9"},
		{ID: "a", Name: "a", Price: "$1"},
	}

	Sort(items, SortDefault)

	assert.Equal(t, []string{"z", "a"}, ids(items))
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortOption("price"))
	assert.Equal(t, SortByPrice, ParseSortOption(" PRICE "))
	assert.Equal(t, SortByName, ParseSortOption("name"))
	assert.Equal(t, SortByName, ParseSortOption("alphabetical"))
	assert.Equal(t, SortDefault, ParseSortOption(""))
	assert.Equal(t, SortDefault, ParseSortOption("newest"))
}

func ids(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
