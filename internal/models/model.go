package models

import "time"

// PropertyStatus is the persisted lifecycle marker of a property.
// A property is logically closed as soon as its end time passes;
// Concluded is the only stored terminal state and is set exactly once.
type PropertyStatus string

const (
	StatusOpen      PropertyStatus = "open"
	StatusConcluded PropertyStatus = "concluded"
)

// RevealState tracks whether a bid's clear amount has been admitted
// through the proof-verified reveal gate.
type RevealState string

const (
	RevealPending  RevealState = "pending"
	RevealRevealed RevealState = "revealed"
)

// Property represents a listed property and its sealed bids.
// Bids are append-only while the property is open; insertion order
// equals submission order.
type Property struct {
	ID        string         `json:"id"`
	Details   string         `json:"details"`
	Seller    string         `json:"seller"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Status    PropertyStatus `json:"status"`
	Bids      []Bid          `json:"bids"`
}

// Bid represents a single sealed bid on a property. ClearAmount is
// meaningful only when RevealState is RevealRevealed.
type Bid struct {
	Bidder          string      `json:"bidder"`
	EncryptedAmount string      `json:"encrypted_amount"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	RevealState     RevealState `json:"reveal_state"`
	ClearAmount     uint64      `json:"clear_amount,omitempty"`
}

// WinningBid is the outcome of the winner scan over revealed bids.
type WinningBid struct {
	Bidder string `json:"bidder"`
	Amount uint64 `json:"amount"`
}
