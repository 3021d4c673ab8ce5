package events

import (
	"housebid/utils"
	"time"
)

// Event types, one per lifecycle transition. Each is emitted exactly
// once when its transition commits.
const (
	TypePropertyListed   = "property_listed"
	TypeBidSubmitted     = "bid_submitted"
	TypeBidRevealed      = "bid_revealed"
	TypeAuctionConcluded = "auction_concluded"
)

// PropertyListed is emitted when a seller lists a property.
type PropertyListed struct {
	PropertyID string    `json:"property_id"`
	Seller     string    `json:"seller"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// BidSubmitted is emitted when a sealed bid is stored. It carries the
// ciphertext handle only, never a clear value.
type BidSubmitted struct {
	PropertyID       string `json:"property_id"`
	Bidder           string `json:"bidder"`
	CiphertextHandle string `json:"ciphertext_handle"`
}

// BidRevealed is emitted when a clear amount passes the proof gate.
type BidRevealed struct {
	PropertyID  string `json:"property_id"`
	Bidder      string `json:"bidder"`
	ClearAmount uint64 `json:"clear_amount"`
}

// AuctionConcluded is emitted when a winner is committed. Winner is
// empty and WinningAmount zero for an auction that closed with no bids.
type AuctionConcluded struct {
	PropertyID    string `json:"property_id"`
	Winner        string `json:"winner"`
	WinningAmount uint64 `json:"winning_amount"`
}

// Envelope wraps an event payload with its type and a unique event id
// for downstream consumers.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewEnvelope builds an envelope for the given event type and payload.
func NewEnvelope(eventType string, payload any) Envelope {
	return Envelope{
		EventID:    utils.GenerateID(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Notifier receives lifecycle events as they commit. Implementations
// must not block the auction write path.
type Notifier interface {
	PropertyListed(e PropertyListed)
	BidSubmitted(e BidSubmitted)
	BidRevealed(e BidRevealed)
	AuctionConcluded(e AuctionConcluded)
}
