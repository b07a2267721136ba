package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahanph/bottleshop/internal/domain"
)

func TestSeedReferentialIntegrity(t *testing.T) {
	categories := make(map[string]bool)
	for _, c := range domain.SeedCategories() {
		require.NotEmpty(t, c.ID)
		require.False(t, categories[c.ID], "duplicate category id %s", c.ID)
		categories[c.ID] = true
	}

	seen := make(map[string]bool)
	for _, p := range domain.SeedProducts() {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.Truef(t, categories[p.CategoryID], "product %s references unknown category %s", p.ID, p.CategoryID)
		assert.NotEmpty(t, p.Tags, "product %s has no tags", p.ID)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestOrderInputItemsSubtotal(t *testing.T) {
	input := domain.OrderInput{
		Items: []domain.OrderItem{
			{ProductID: "1", Quantity: 2, Price: 899.00},
			{ProductID: "14", Quantity: 3, Price: 120.00},
		},
	}
	assert.InDelta(t, 2158.00, input.ItemsSubtotal(), 0.001)
}

func TestStringListScan(t *testing.T) {
	var tags domain.StringList
	require.NoError(t, tags.Scan([]byte(`["cream","sweet"]`)))
	assert.Equal(t, domain.StringList{"cream", "sweet"}, tags)

	v, err := tags.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["cream","sweet"]`, v.(string))

	require.NoError(t, tags.Scan(nil))
	assert.Nil(t, tags)
}
