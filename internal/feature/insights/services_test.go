package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedOrderQty(t *testing.T) {
	// 45 days of cover at the 30-day run rate.
	assert.Equal(t, 90, SuggestedOrderQty(10, 2.0))
	// Fractional run rates round up, never down.
	assert.Equal(t, 46, SuggestedOrderQty(10, 1.01))
	// MOQ wins when demand is tiny.
	assert.Equal(t, 100, SuggestedOrderQty(100, 0.5))
	// Zero and negative run rates fall back to MOQ.
	assert.Equal(t, 50, SuggestedOrderQty(50, 0))
	assert.Equal(t, 50, SuggestedOrderQty(50, -3))
}

func TestListSortWhitelist(t *testing.T) {
	for key, column := range sortColumns {
		assert.NotContains(t, column, " ", "sort column %q must be a bare identifier", key)
	}
	_, ok := sortColumns["id; DROP TABLE sku_metrics"]
	assert.False(t, ok)
}
