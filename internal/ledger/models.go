package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"zoo/internal/anomaly"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

// Reason classifies an inventory entry.
type Reason string

const (
	ReasonPurchase   Reason = "purchase"
	ReasonFeeding    Reason = "feeding"
	ReasonWastage    Reason = "wastage"
	ReasonAdjustment Reason = "adjustment"
)

func ParseReason(s string) (Reason, error) {
	switch r := Reason(s); r {
	case ReasonPurchase, ReasonFeeding, ReasonWastage, ReasonAdjustment:
		return r, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "reason must be purchase, feeding, wastage or adjustment")
}

// FeedItem is reference data; it is never deleted while entries reference it.
type FeedItem struct {
	ID       id.FeedItemID   `json:"feed_item_id"`
	Name     string          `json:"name"`
	Category id.FeedCategory `json:"category"`
}

// InventoryEntry is one append-only signed change to a feed item's stock.
// Positive quantities are inbound, negative ones consumption.
type InventoryEntry struct {
	ID         string          `json:"entry_id"`
	FeedItemID id.FeedItemID   `json:"feed_item_id"`
	Quantity   decimal.Decimal `json:"quantity_kg"`
	At         time.Time       `json:"timestamp"`
	Reason     Reason          `json:"reason"`
	FeedingID  id.RecordID     `json:"feeding_id,omitempty"`
	RecordedBy id.EmployeeID   `json:"recorded_by,omitempty"`
}

// FeedingRecord is one consumption by an animal. Each committed record has
// exactly one feeding entry with Quantity equal to -Amount.
type FeedingRecord struct {
	ID         id.RecordID     `json:"feeding_id"`
	AnimalID   id.AnimalID     `json:"animal_id"`
	FeedItemID id.FeedItemID   `json:"feed_item_id"`
	Amount     decimal.Decimal `json:"amount_kg"`
	At         time.Time       `json:"timestamp"`
	FedBy      id.EmployeeID   `json:"fed_by"`
}

// StockLevel is the current stock of a feed item.
type StockLevel struct {
	FeedItem
	Stock decimal.Decimal `json:"stock_kg"`
}

// AnimalInfo is the display data shown in a feeding confirmation.
type AnimalInfo struct {
	ID      id.AnimalID
	Name    string
	Species string
}

// FeedResult is returned by a committed feeding.
type FeedResult struct {
	Record    *FeedingRecord  `json:"record"`
	Entry     *InventoryEntry `json:"entry"`
	Remaining decimal.Decimal `json:"remaining_kg"`
	Message   string          `json:"-"`
	Anomaly   *anomaly.Result `json:"anomaly,omitempty"`
}
