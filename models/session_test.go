package models_test

import (
	"testing"
	"time"

	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_Isolation(t *testing.T) {
	registry := models.NewSessionRegistry(4, time.Hour)

	a := registry.Create("a.csv", readStore(t, sampleOrders), nil)
	b := registry.Create("b.csv", nil, models.ErrMissingDateColumn)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, registry.Len())

	got, ok := registry.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Store.Len())
	assert.Empty(t, got.Warnings)

	got, ok = registry.Get(b.ID)
	require.True(t, ok)
	assert.True(t, got.Store.IsEmpty())
	assert.Equal(t, []string{"column 'date' not found in dataset"}, got.Warnings)
}

func TestSessionRegistry_Delete(t *testing.T) {
	registry := models.NewSessionRegistry(4, time.Hour)
	s := registry.Create("a.csv", models.EmptyRowStore(), nil)

	assert.True(t, registry.Delete(s.ID))
	assert.False(t, registry.Delete(s.ID))
	_, ok := registry.Get(s.ID)
	assert.False(t, ok)
}

func TestSessionRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	registry := models.NewSessionRegistry(2, time.Hour)
	first := registry.Create("1.csv", nil, nil)
	second := registry.Create("2.csv", nil, nil)

	_, ok := registry.Get(first.ID)
	require.True(t, ok)
	registry.Create("3.csv", nil, nil)

	_, ok = registry.Get(second.ID)
	assert.False(t, ok)
	_, ok = registry.Get(first.ID)
	assert.True(t, ok)
}
