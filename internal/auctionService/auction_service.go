package auction

import (
	"fmt"
	"time"

	"housebid/internal/auctionerrors"
	"housebid/internal/events"
	"housebid/internal/ledger"
	"housebid/internal/models"
	"housebid/internal/verifier"
)

// AuctionService orchestrates the auction lifecycle: time-gated
// listing, sealed-bid submission, proof-verified reveal and winner
// selection. Storage is delegated to the ledger; cryptographic checks
// to the external verifier capability.
type AuctionService struct {
	ledger   ledger.PropertyLedger
	verifier verifier.Verifier
	clock    Clock
	notifier events.Notifier
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(l ledger.PropertyLedger, v verifier.Verifier, clock Clock, notifier events.Notifier) *AuctionService {
	return &AuctionService{
		ledger:   l,
		verifier: v,
		clock:    clock,
		notifier: notifier,
	}
}

// ListProperty opens a new auction. The bidding window starts now and
// runs for the given duration.
func (s *AuctionService) ListProperty(id, details, seller string, duration time.Duration) (models.Property, error) {
	if duration <= 0 {
		return models.Property{}, fmt.Errorf("service: list property %s: %w", id, auctionerrors.ErrInvalidDuration)
	}

	startTime := s.clock.Now()
	endTime := startTime.Add(duration)

	prop, err := s.ledger.CreateProperty(id, details, seller, startTime, endTime)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: failed to list property %s: %w", id, err)
	}

	s.notifier.PropertyListed(events.PropertyListed{
		PropertyID: prop.ID,
		Seller:     prop.Seller,
		StartTime:  prop.StartTime,
		EndTime:    prop.EndTime,
	})

	return prop, nil
}

// SubmitBid stores a sealed bid on an open property. The encrypted
// amount is validated for well-formedness before storage; the clear
// value never passes through here. Returns the bid's insertion index,
// the stable handle later reveal calls must use.
func (s *AuctionService) SubmitBid(propertyID, bidder, encryptedAmount, submissionProof string) (int, error) {
	prop, err := s.ledger.GetProperty(propertyID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to submit bid for property %s: %w", propertyID, err)
	}

	now := s.clock.Now()
	if now.Before(prop.StartTime) {
		return 0, fmt.Errorf("service: submit bid for property %s: %w", propertyID, auctionerrors.ErrBiddingNotStarted)
	}
	if now.After(prop.EndTime) {
		return 0, fmt.Errorf("service: submit bid for property %s: %w", propertyID, auctionerrors.ErrBiddingEnded)
	}

	if err := s.verifier.VerifyCiphertext(encryptedAmount, submissionProof); err != nil {
		return 0, fmt.Errorf("service: submit bid for property %s: %w", propertyID, err)
	}

	bidIndex, err := s.ledger.AppendBid(propertyID, bidder, encryptedAmount, now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to submit bid for property %s: %w", propertyID, err)
	}

	s.notifier.BidSubmitted(events.BidSubmitted{
		PropertyID:       propertyID,
		Bidder:           bidder,
		CiphertextHandle: encryptedAmount,
	})

	return bidIndex, nil
}

// RevealBid admits a claimed clear value into the trusted record. This
// is the single trust boundary: the value is stored only after the
// external verifier accepts the decryption proof against the ciphertext
// fetched from the ledger. Replays on an already revealed bid are
// rejected regardless of proof validity.
func (s *AuctionService) RevealBid(propertyID string, bidIndex int, claimedClearValue uint64, decryptionProof string) error {
	bid, err := s.ledger.GetBid(propertyID, bidIndex)
	if err != nil {
		return fmt.Errorf("service: failed to reveal bid %d for property %s: %w", bidIndex, propertyID, err)
	}

	if bid.RevealState == models.RevealRevealed {
		return fmt.Errorf("service: reveal bid %d for property %s: %w", bidIndex, propertyID, auctionerrors.ErrAlreadyRevealed)
	}

	ok, err := s.verifier.VerifyReveal(bid.EncryptedAmount, claimedClearValue, decryptionProof)
	if err != nil {
		return fmt.Errorf("service: reveal bid %d for property %s: %w: %v", bidIndex, propertyID, auctionerrors.ErrProofVerificationFailed, err)
	}
	if !ok {
		return fmt.Errorf("service: reveal bid %d for property %s: %w", bidIndex, propertyID, auctionerrors.ErrProofVerificationFailed)
	}

	if err := s.ledger.MarkRevealed(propertyID, bidIndex, claimedClearValue); err != nil {
		return fmt.Errorf("service: failed to reveal bid %d for property %s: %w", bidIndex, propertyID, err)
	}

	s.notifier.BidRevealed(events.BidRevealed{
		PropertyID:  propertyID,
		Bidder:      bid.Bidder,
		ClearAmount: claimedClearValue,
	})

	return nil
}

// ConcludeAuction commits the winner once the bidding window has passed
// and every bid has been revealed. A zero-bid auction concludes with an
// empty winner, not an error.
func (s *AuctionService) ConcludeAuction(propertyID string) (*models.WinningBid, error) {
	prop, err := s.ledger.GetProperty(propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to conclude auction for property %s: %w", propertyID, err)
	}

	if !s.clock.Now().After(prop.EndTime) {
		return nil, fmt.Errorf("service: conclude auction for property %s: %w", propertyID, auctionerrors.ErrAuctionStillOpen)
	}

	winner, err := s.ledger.MarkConcluded(propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to conclude auction for property %s: %w", propertyID, err)
	}

	concluded := events.AuctionConcluded{PropertyID: propertyID}
	if winner != nil {
		concluded.Winner = winner.Bidder
		concluded.WinningAmount = winner.Amount
	}
	s.notifier.AuctionConcluded(concluded)

	return winner, nil
}

// GetProperty returns the property's metadata and bids.
func (s *AuctionService) GetProperty(propertyID string) (models.Property, error) {
	if propertyID == "" {
		return models.Property{}, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrUnknownProperty)
	}

	prop, err := s.ledger.GetProperty(propertyID)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: failed to get property %s: %w", propertyID, err)
	}

	return prop, nil
}

// GetBid returns the public fields of a single bid.
func (s *AuctionService) GetBid(propertyID string, bidIndex int) (models.Bid, error) {
	if propertyID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrUnknownProperty)
	}

	bid, err := s.ledger.GetBid(propertyID, bidIndex)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %d for property %s: %w", bidIndex, propertyID, err)
	}

	return bid, nil
}

// BidCount returns the number of bids on a property.
func (s *AuctionService) BidCount(propertyID string) (int, error) {
	if propertyID == "" {
		return 0, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrUnknownProperty)
	}

	count, err := s.ledger.BidCount(propertyID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get bid count for property %s: %w", propertyID, err)
	}

	return count, nil
}

// PropertyIDs returns the ids of every listed property.
func (s *AuctionService) PropertyIDs() []string {
	return s.ledger.PropertyIDs()
}
