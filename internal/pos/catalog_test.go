package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatchesNameCodeAndCategory(t *testing.T) {
	catalog := SampleCatalog()

	byName := catalog.Filter("wireless")
	require.Len(t, byName, 2)
	assert.Equal(t, "Wireless Headphones", byName[0].Name)
	assert.Equal(t, "Wireless Mouse", byName[1].Name)

	byCode := catalog.Filter("oc002")
	require.Len(t, byCode, 1)
	assert.Equal(t, "Office Chair", byCode[0].Name)

	byCategory := catalog.Filter("furniture")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "OC002", byCategory[0].Code)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	catalog := SampleCatalog()

	assert.Equal(t, catalog.Filter("desk"), catalog.Filter("DESK"))
	assert.Equal(t, catalog.Filter("desk"), catalog.Filter("DeSk"))
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	catalog := SampleCatalog()

	all := catalog.Filter("")
	assert.Len(t, all, catalog.Len())
}

func TestFilterKeepsCatalogOrder(t *testing.T) {
	catalog := SampleCatalog()

	// "stand" matches Laptop Stand (3rd) and Monitor Stand (7th).
	matches := catalog.Filter("stand")
	require.Len(t, matches, 2)
	assert.Equal(t, "LS003", matches[0].Code)
	assert.Equal(t, "MS007", matches[1].Code)
}

func TestFilterNoMatches(t *testing.T) {
	catalog := SampleCatalog()

	assert.Empty(t, catalog.Filter("zzz"))
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, "Out of Stock", Item{Stock: 0}.StockStatus())
	assert.Equal(t, "Low Stock", Item{Stock: 9}.StockStatus())
	assert.Equal(t, "In Stock", Item{Stock: 10}.StockStatus())
}
