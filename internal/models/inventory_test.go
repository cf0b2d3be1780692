package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_AddReplaceRemove(t *testing.T) {
	inv := NewInventory()
	changes := 0
	inv.OnChange(func() { changes++ })

	inv.Add(Item{SerialNumber: "1", Name: "One", Cost: "1"})
	inv.Add(Item{SerialNumber: "2", Name: "Two", Cost: "2"})
	require.Equal(t, 2, inv.Len())

	require.NoError(t, inv.Replace(1, Item{SerialNumber: "2", Name: "Deux", Cost: "2"}))
	item, err := inv.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Deux", item.Name)

	assert.True(t, inv.Remove(Item{SerialNumber: "1", Name: "One", Cost: "1"}))
	assert.False(t, inv.Remove(Item{SerialNumber: "1", Name: "One", Cost: "1"}))
	assert.Equal(t, []Item{{SerialNumber: "2", Name: "Deux", Cost: "2"}}, inv.Items())

	assert.Equal(t, 4, changes)
}

func TestInventory_ReplaceOutOfRange(t *testing.T) {
	inv := NewInventory(Item{SerialNumber: "1"})

	assert.ErrorIs(t, inv.Replace(1, Item{}), ErrIndexOutOfRange)
	assert.ErrorIs(t, inv.Replace(-1, Item{}), ErrIndexOutOfRange)

	_, err := inv.Get(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestInventory_ItemsIsACopy(t *testing.T) {
	inv := NewInventory(Item{SerialNumber: "1", Name: "One"})

	items := inv.Items()
	items[0].Name = "changed"

	item, err := inv.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "One", item.Name)
}

func TestInventory_ClearAndReplaceAll(t *testing.T) {
	inv := NewInventory(sample...)

	inv.Clear()
	assert.Zero(t, inv.Len())

	inv.ReplaceAll(sample[:2])
	assert.Equal(t, sample[:2], inv.Items())
}

func TestInventory_LookupAndFilter(t *testing.T) {
	inv := NewInventory(sample...)

	assert.Equal(t, 2, inv.IndexOfSerial(Item{SerialNumber: "B-001"}))
	assert.Equal(t, NotFound, inv.IndexOfSerial(Item{SerialNumber: "nope"}))
	assert.Equal(t, []string{"A-001", "B-002"}, serials(inv.Filter("Widget", SearchByName)))
}
