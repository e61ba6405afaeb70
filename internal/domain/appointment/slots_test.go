package appointment

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, 22)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "19:30", grid[len(grid)-1])
	assert.True(t, sort.StringsAreSorted(grid))
}

func TestOnSlotGrid(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 2, 15, h, m, 0, 0, time.UTC)
	}

	assert.True(t, OnSlotGrid(day(9, 0)))
	assert.True(t, OnSlotGrid(day(14, 30)))
	assert.True(t, OnSlotGrid(day(19, 30)))

	assert.False(t, OnSlotGrid(day(8, 30)), "antes da abertura")
	assert.False(t, OnSlotGrid(day(20, 0)), "depois do fechamento")
	assert.False(t, OnSlotGrid(day(10, 15)), "fora da grade de 30 minutos")
	assert.False(t, OnSlotGrid(time.Date(2026, 2, 15, 10, 0, 30, 0, time.UTC)))
}

func TestAvailableSlots(t *testing.T) {
	t.Run("dia vazio devolve a grade inteira", func(t *testing.T) {
		slots := AvailableSlots(nil)
		assert.Equal(t, SlotGrid(), slots)
	})

	t.Run("horários ocupados saem da grade", func(t *testing.T) {
		booked := []time.Time{
			time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 15, 14, 30, 0, 0, time.UTC),
		}

		slots := AvailableSlots(booked)

		assert.Len(t, slots, 20)
		assert.NotContains(t, slots, "09:00")
		assert.NotContains(t, slots, "14:30")
		assert.True(t, sort.StringsAreSorted(slots))
	})

	t.Run("duração do serviço não bloqueia slots vizinhos", func(t *testing.T) {
		// um corte de 60 minutos às 10:00 ocupa só o slot das 10:00
		booked := []time.Time{
			time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
		}

		slots := AvailableSlots(booked)

		assert.NotContains(t, slots, "10:00")
		assert.Contains(t, slots, "10:30")
	})
}
