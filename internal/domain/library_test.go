package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeItemStatus(t *testing.T) {
	tests := []struct {
		name      string
		condition ItemCondition
		available int
		total     int
		want      ItemStatus
	}{
		{"maintenance wins over full stock", ConditionMaintenance, 4, 4, ItemMaintenance},
		{"maintenance wins over zero stock", ConditionMaintenance, 0, 4, ItemMaintenance},
		{"zero available", ConditionGood, 0, 4, ItemUnavailable},
		{"half available is limited", ConditionGood, 2, 4, ItemLimited},
		{"below half is limited", ConditionGood, 1, 4, ItemLimited},
		{"above half is available", ConditionGood, 3, 4, ItemAvailable},
		{"single unit in stock", ConditionNew, 1, 1, ItemAvailable},
		{"single unit borrowed", ConditionNew, 0, 1, ItemUnavailable},
		{"one of two is limited", ConditionFair, 1, 2, ItemLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeItemStatus(tt.condition, tt.available, tt.total))
		})
	}
}

func TestLibraryItem_ComputeAvailability(t *testing.T) {
	item := &LibraryItem{Condition: ConditionGood, TotalQuantity: 3}

	available, status := item.ComputeAvailability(0)
	require.Equal(t, 3, available)
	require.Equal(t, ItemAvailable, status)

	available, status = item.ComputeAvailability(2)
	require.Equal(t, 1, available)
	require.Equal(t, ItemLimited, status)

	available, status = item.ComputeAvailability(3)
	require.Equal(t, 0, available)
	require.Equal(t, ItemUnavailable, status)

	// открытых выдач больше, чем единиц: остаток не уходит в минус
	available, status = item.ComputeAvailability(5)
	require.Equal(t, 0, available)
	require.Equal(t, ItemUnavailable, status)
}

func TestItemCondition_IsValid(t *testing.T) {
	require.True(t, ConditionNew.IsValid())
	require.True(t, ConditionGood.IsValid())
	require.True(t, ConditionFair.IsValid())
	require.True(t, ConditionMaintenance.IsValid())
	require.False(t, ItemCondition("broken").IsValid())
}

func TestItemCategory_IsValid(t *testing.T) {
	require.True(t, CategoryMonitor.IsValid())
	require.True(t, CategoryCable.IsValid())
	require.False(t, ItemCategory("laptop").IsValid())
}

func TestBorrowRecord_IsOpen(t *testing.T) {
	record := &BorrowRecord{}
	require.True(t, record.IsOpen())

	returned := time.Now()
	record.ReturnedAt = &returned
	require.False(t, record.IsOpen())
}
