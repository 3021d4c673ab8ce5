package events

import "sync"

// Recorder is an in-memory Notifier that keeps every envelope it
// receives, in emission order. Intended for tests that assert on the
// notification stream.
type Recorder struct {
	mu        sync.Mutex
	envelopes []Envelope
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, NewEnvelope(eventType, payload))
}

func (r *Recorder) PropertyListed(e PropertyListed)     { r.record(TypePropertyListed, e) }
func (r *Recorder) BidSubmitted(e BidSubmitted)         { r.record(TypeBidSubmitted, e) }
func (r *Recorder) BidRevealed(e BidRevealed)           { r.record(TypeBidRevealed, e) }
func (r *Recorder) AuctionConcluded(e AuctionConcluded) { r.record(TypeAuctionConcluded, e) }

// Events returns a snapshot of the recorded envelopes in order.
func (r *Recorder) Events() []Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Envelope(nil), r.envelopes...)
}

// ByType returns the recorded envelopes matching the given event type.
func (r *Recorder) ByType(eventType string) []Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Envelope
	for _, env := range r.envelopes {
		if env.Type == eventType {
			out = append(out, env)
		}
	}
	return out
}
