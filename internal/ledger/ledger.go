package ledger

import (
	"fmt"
	"housebid/internal/auctionerrors"
	model "housebid/internal/models"
	"sync"
	"time"
)

// PropertyLedger defines the property/bid storage interface for the
// auction system. Bids are referenced by their 0-based insertion index,
// the sole stable handle returned by AppendBid.
type PropertyLedger interface {
	CreateProperty(id, details, seller string, startTime, endTime time.Time) (model.Property, error)
	AppendBid(propertyID, bidder, encryptedAmount string, submittedAt time.Time) (int, error)
	MarkRevealed(propertyID string, bidIndex int, clearAmount uint64) error
	AllBidsRevealed(propertyID string) (bool, error)
	HighestRevealedBid(propertyID string) (*model.WinningBid, error)
	MarkConcluded(propertyID string) (*model.WinningBid, error)
	GetProperty(propertyID string) (model.Property, error)
	GetBid(propertyID string, bidIndex int) (model.Bid, error)
	BidCount(propertyID string) (int, error)
	PropertyIDs() []string
}

// propertyEntry pairs a property record with its own mutex so that
// mutations on different properties never contend with each other.
type propertyEntry struct {
	mu   sync.Mutex
	prop model.Property
}

// MemoryLedger is a concurrency-safe in-memory implementation of
// PropertyLedger. The outer RWMutex guards only the map; each entry's
// mutex serializes read-then-write sequences on that property.
type MemoryLedger struct {
	mu         sync.RWMutex
	properties map[string]*propertyEntry
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		properties: make(map[string]*propertyEntry),
	}
}

func (l *MemoryLedger) entry(propertyID string) (*propertyEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.properties[propertyID]
	if !ok {
		return nil, fmt.Errorf("property %s: %w", propertyID, auctionerrors.ErrUnknownProperty)
	}
	return e, nil
}

// CreateProperty stores a new property record. The id must be globally
// unique; a second listing with the same id is rejected with no other
// side effects.
func (l *MemoryLedger) CreateProperty(id, details, seller string, startTime, endTime time.Time) (model.Property, error) {
	if !startTime.Before(endTime) {
		return model.Property{}, fmt.Errorf("create property %s: %w", id, auctionerrors.ErrInvalidDuration)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.properties[id]; ok {
		return model.Property{}, fmt.Errorf("create property %s: %w", id, auctionerrors.ErrDuplicateID)
	}

	prop := model.Property{
		ID:        id,
		Details:   details,
		Seller:    seller,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    model.StatusOpen,
	}
	l.properties[id] = &propertyEntry{prop: prop}

	return prop, nil
}

// AppendBid records a sealed bid on an open property and returns its
// 0-based position in insertion order.
func (l *MemoryLedger) AppendBid(propertyID, bidder, encryptedAmount string, submittedAt time.Time) (int, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return 0, fmt.Errorf("append bid: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.prop.Status != model.StatusOpen {
		return 0, fmt.Errorf("append bid for property %s: %w", propertyID, auctionerrors.ErrPropertyNotOpen)
	}

	e.prop.Bids = append(e.prop.Bids, model.Bid{
		Bidder:          bidder,
		EncryptedAmount: encryptedAmount,
		SubmittedAt:     submittedAt,
		RevealState:     model.RevealPending,
	})

	return len(e.prop.Bids) - 1, nil
}

// MarkRevealed irreversibly transitions a bid to Revealed and stores
// its clear amount. A bid that is already revealed is rejected, never
// overwritten.
func (l *MemoryLedger) MarkRevealed(propertyID string, bidIndex int, clearAmount uint64) error {
	e, err := l.entry(propertyID)
	if err != nil {
		return fmt.Errorf("mark revealed: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if bidIndex < 0 || bidIndex >= len(e.prop.Bids) {
		return fmt.Errorf("mark revealed for property %s index %d: %w", propertyID, bidIndex, auctionerrors.ErrUnknownBid)
	}

	bid := &e.prop.Bids[bidIndex]
	if bid.RevealState == model.RevealRevealed {
		return fmt.Errorf("mark revealed for property %s index %d: %w", propertyID, bidIndex, auctionerrors.ErrAlreadyRevealed)
	}

	bid.RevealState = model.RevealRevealed
	bid.ClearAmount = clearAmount

	return nil
}

// AllBidsRevealed reports whether every bid under the property has been
// revealed. Vacuously true for zero bids.
func (l *MemoryLedger) AllBidsRevealed(propertyID string) (bool, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return false, fmt.Errorf("all bids revealed: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return allRevealed(e.prop.Bids), nil
}

// HighestRevealedBid scans revealed bids in insertion order and returns
// the first bidder to reach the maximum amount. Strictly-greater
// comparison keeps the earliest-inserted bid on ties. Returns nil when
// the property has no bids.
func (l *MemoryLedger) HighestRevealedBid(propertyID string) (*model.WinningBid, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return nil, fmt.Errorf("highest revealed bid: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return highestRevealed(e.prop.Bids), nil
}

// MarkConcluded is the terminal mutation: it verifies every bid has
// been revealed, computes the winner and sets the Concluded status, all
// under the property's lock so the check and the write are one atomic
// step. Returns nil for a zero-bid auction.
func (l *MemoryLedger) MarkConcluded(propertyID string) (*model.WinningBid, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return nil, fmt.Errorf("mark concluded: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.prop.Status == model.StatusConcluded {
		return nil, fmt.Errorf("mark concluded for property %s: %w", propertyID, auctionerrors.ErrAlreadyConcluded)
	}
	if !allRevealed(e.prop.Bids) {
		return nil, fmt.Errorf("mark concluded for property %s: %w", propertyID, auctionerrors.ErrIncompleteReveal)
	}

	winner := highestRevealed(e.prop.Bids)
	e.prop.Status = model.StatusConcluded

	return winner, nil
}

// GetProperty returns a copy of the property record, including a copy
// of its bid slice so callers never hold a mutable alias into the
// ledger.
func (l *MemoryLedger) GetProperty(propertyID string) (model.Property, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return model.Property{}, fmt.Errorf("get property: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prop := e.prop
	prop.Bids = append([]model.Bid(nil), e.prop.Bids...)
	return prop, nil
}

// GetBid returns a copy of a single bid's fields.
func (l *MemoryLedger) GetBid(propertyID string, bidIndex int) (model.Bid, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if bidIndex < 0 || bidIndex >= len(e.prop.Bids) {
		return model.Bid{}, fmt.Errorf("get bid for property %s index %d: %w", propertyID, bidIndex, auctionerrors.ErrUnknownBid)
	}

	return e.prop.Bids[bidIndex], nil
}

// BidCount returns the number of bids stored under the property.
func (l *MemoryLedger) BidCount(propertyID string) (int, error) {
	e, err := l.entry(propertyID)
	if err != nil {
		return 0, fmt.Errorf("bid count: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.prop.Bids), nil
}

// PropertyIDs returns the ids of every listed property.
func (l *MemoryLedger) PropertyIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.properties))
	for id := range l.properties {
		ids = append(ids, id)
	}
	return ids
}

func allRevealed(bids []model.Bid) bool {
	for i := range bids {
		if bids[i].RevealState != model.RevealRevealed {
			return false
		}
	}
	return true
}

func highestRevealed(bids []model.Bid) *model.WinningBid {
	var winner *model.WinningBid
	for i := range bids {
		b := &bids[i]
		if b.RevealState != model.RevealRevealed {
			continue
		}
		if winner == nil || b.ClearAmount > winner.Amount {
			winner = &model.WinningBid{Bidder: b.Bidder, Amount: b.ClearAmount}
		}
	}
	return winner
}
