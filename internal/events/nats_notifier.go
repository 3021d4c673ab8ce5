package events

import (
	"encoding/json"
	"fmt"

	"housebid/utils"

	"github.com/nats-io/nats.go"
)

// Subject naming: "auctions.<event_type>.<property_id>" allows
// downstream consumers to subscribe per event type or per property.
const subjectPrefix = "auctions"

// NATSNotifier publishes lifecycle events to a NATS server as JSON
// envelopes. Publishing is best effort: a broker failure is logged and
// never fails the auction write path.
type NATSNotifier struct {
	conn *nats.Conn
}

// NewNATSNotifier connects to the NATS server at natsURL.
func NewNATSNotifier(natsURL string) (*NATSNotifier, error) {
	conn, err := nats.Connect(natsURL, nats.Name("housebid-auction-service"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", natsURL, err)
	}
	return &NATSNotifier{conn: conn}, nil
}

// Close drains the underlying connection.
func (n *NATSNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

func (n *NATSNotifier) publish(eventType, propertyID string, payload any) {
	data, err := json.Marshal(NewEnvelope(eventType, payload))
	if err != nil {
		utils.Error("failed to marshal event envelope", map[string]any{
			"type":  eventType,
			"error": err.Error(),
		})
		return
	}

	subject := fmt.Sprintf("%s.%s.%s", subjectPrefix, eventType, propertyID)
	if err := n.conn.Publish(subject, data); err != nil {
		utils.Warn("failed to publish event to NATS", map[string]any{
			"subject": subject,
			"error":   err.Error(),
		})
	}
}

func (n *NATSNotifier) PropertyListed(e PropertyListed) {
	n.publish(TypePropertyListed, e.PropertyID, e)
}

func (n *NATSNotifier) BidSubmitted(e BidSubmitted) {
	n.publish(TypeBidSubmitted, e.PropertyID, e)
}

func (n *NATSNotifier) BidRevealed(e BidRevealed) {
	n.publish(TypeBidRevealed, e.PropertyID, e)
}

func (n *NATSNotifier) AuctionConcluded(e AuctionConcluded) {
	n.publish(TypeAuctionConcluded, e.PropertyID, e)
}
