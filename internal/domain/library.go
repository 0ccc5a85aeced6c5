package domain

import "time"

// ItemCondition represents the physical condition of a library item
type ItemCondition string

const (
	ConditionNew         ItemCondition = "new"
	ConditionGood        ItemCondition = "good"
	ConditionFair        ItemCondition = "fair"
	ConditionMaintenance ItemCondition = "maintenance"
)

// IsValid returns true for a known item condition
func (c ItemCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionMaintenance:
		return true
	default:
		return false
	}
}

// ItemStatus represents the derived availability status of a library item
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemLimited     ItemStatus = "limited"
	ItemUnavailable ItemStatus = "unavailable"
	ItemMaintenance ItemStatus = "maintenance"
)

// ItemCategory represents the category of a library item
type ItemCategory string

const (
	CategoryMonitor  ItemCategory = "monitor"
	CategoryCable    ItemCategory = "cable"
	CategoryKeyboard ItemCategory = "keyboard"
	CategoryMouse    ItemCategory = "mouse"
	CategoryCharger  ItemCategory = "charger"
	CategoryWebcam   ItemCategory = "webcam"
)

// IsValid returns true for a known item category
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryMonitor, CategoryCable, CategoryKeyboard,
		CategoryMouse, CategoryCharger, CategoryWebcam:
		return true
	default:
		return false
	}
}

// LibraryItem represents a loanable equipment item.
// AvailableQuantity and Status are materialized views over the item's open
// borrow records, never edited directly.
type LibraryItem struct {
	ID                int64
	Name              string
	Category          ItemCategory
	Condition         ItemCondition
	TotalQuantity     int
	AvailableQuantity int
	Status            ItemStatus
	Notes             *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeAvailability derives available quantity and status of an item from
// the count of its open borrow records
func (i *LibraryItem) ComputeAvailability(openBorrows int) (available int, status ItemStatus) {
	available = i.TotalQuantity - openBorrows
	if available < 0 {
		available = 0
	}
	if available > i.TotalQuantity {
		available = i.TotalQuantity
	}
	return available, ComputeItemStatus(i.Condition, available, i.TotalQuantity)
}

// ComputeItemStatus derives the item status from condition and quantities.
// An item in maintenance is always reported as maintenance; otherwise the
// status follows the available/total ratio with a 50% "limited" threshold.
func ComputeItemStatus(condition ItemCondition, available, total int) ItemStatus {
	if condition == ConditionMaintenance {
		return ItemMaintenance
	}
	if available <= 0 {
		return ItemUnavailable
	}
	if float64(available) <= float64(total)*LimitedStatusRatio {
		return ItemLimited
	}
	return ItemAvailable
}

// BorrowRecord represents one loan of a library item to a customer.
// A record with no return date is open and counts against the item's quantity.
type BorrowRecord struct {
	ID         int64
	ItemID     int64
	CustomerID int64
	BorrowedAt time.Time
	ReturnedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the item has not been returned yet
func (r *BorrowRecord) IsOpen() bool {
	return r.ReturnedAt == nil
}
