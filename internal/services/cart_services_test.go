package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddAndRemoveByID(t *testing.T) {
	cart := NewCartService()

	first, err := cart.Add("croissant", 2, nil)
	require.NoError(t, err)
	second, err := cart.Add("baguette", 1, nil)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "croissant", lines[0].ProductType)
	assert.Equal(t, "baguette", lines[1].ProductType)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, cart.Remove(first.ID))
	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "baguette", lines[0].ProductType)
	assert.Equal(t, second.ID, lines[0].ID)
}

func TestCartRepeatedAddsStayDistinct(t *testing.T) {
	cart := NewCartService()

	a, _ := cart.Add("muffin", 6, nil)
	b, _ := cart.Add("muffin", 6, nil)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, cart.Lines(), 2)

	// removing one by id leaves the other intact
	require.NoError(t, cart.Remove(a.ID))
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, b.ID, lines[0].ID)
}

func TestCartAddValidation(t *testing.T) {
	cart := NewCartService()

	_, err := cart.Add("", 1, nil)
	assert.ErrorIs(t, err, ErrMissingProduct)

	_, err = cart.Add("cookie", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = cart.Add("cookie", -3, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.True(t, cart.Empty())
}

func TestCartRemoveUnknownID(t *testing.T) {
	cart := NewCartService()
	cart.Add("brownie", 1, nil)

	err := cart.Remove("not-a-line")
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Len(t, cart.Lines(), 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCartService()
	cart.Add("donut", 12, nil)
	cart.Add("cookie", 24, nil)

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Empty(t, cart.Lines())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	cart := NewCartService()
	cart.Add("sheet_cake", 1, nil)

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
