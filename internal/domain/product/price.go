// internal/domain/product/price.go
package product

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var ErrUnparsablePrice = errors.New("product: unparsable price")

// ParsePrice extracts the numeric amount from a display price string.
// Currency symbols, thousand separators and other non-numeric characters are
// stripped before parsing ("$1,250.50" -> 1250.50, "₩9,900" -> 9900).
// Only digits, '.' and a leading '-' survive stripping; an empty or
// non-numeric remainder returns ErrUnparsablePrice.
func ParsePrice(display string) (float64, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(display) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" || s == "-" {
		return 0, ErrUnparsablePrice
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrUnparsablePrice
	}
	return v, nil
}

// SortOption selects the client-side catalog ordering.
type SortOption string

const (
	SortDefault SortOption = "default"
	SortByPrice SortOption = "price"
	SortByName  SortOption = "name"
)

// Sort orders products in place.
//   - SortByPrice: stable ascending numeric sort over the display strings
//     ("$9.99" sorts before "$15"); unparsable prices keep their relative
//     order at the end
//   - SortByName: lexicographic by name
//   - anything else: store-default order, untouched
func Sort(items []Product, opt SortOption) {
	switch opt {
	case SortByPrice:
		sort.SliceStable(items, func(i, j int) bool {
			vi, ei := ParsePrice(items[i].Price)
			vj, ej := ParsePrice(items[j].Price)
			if ei != nil && ej != nil {
				return false
			}
			if ei != nil {
				return false
			}
			if ej != nil {
				return true
			}
			return vi < vj
		})
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	}
}

// ParseSortOption normalizes a query-string sort value.
func ParseSortOption(s string) SortOption {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price":
		return SortByPrice
	case "name", "alphabetical":
		return SortByName
	default:
		return SortDefault
	}
}
