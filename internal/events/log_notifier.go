package events

import "housebid/utils"

// LogNotifier writes every lifecycle event to the structured log. It is
// the default notifier when no message broker is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) PropertyListed(e PropertyListed) {
	utils.Info("event: property listed", map[string]any{
		"property_id": e.PropertyID,
		"seller":      e.Seller,
		"start_time":  e.StartTime,
		"end_time":    e.EndTime,
	})
}

func (n *LogNotifier) BidSubmitted(e BidSubmitted) {
	utils.Info("event: bid submitted", map[string]any{
		"property_id":       e.PropertyID,
		"bidder":            e.Bidder,
		"ciphertext_handle": e.CiphertextHandle,
	})
}

func (n *LogNotifier) BidRevealed(e BidRevealed) {
	utils.Info("event: bid revealed", map[string]any{
		"property_id":  e.PropertyID,
		"bidder":       e.Bidder,
		"clear_amount": e.ClearAmount,
	})
}

func (n *LogNotifier) AuctionConcluded(e AuctionConcluded) {
	utils.Info("event: auction concluded", map[string]any{
		"property_id":    e.PropertyID,
		"winner":         e.Winner,
		"winning_amount": e.WinningAmount,
	})
}
