package auctionerrors

import "errors"

// Ledger-level errors
var (
	ErrDuplicateID     = errors.New("property id already listed")
	ErrUnknownProperty = errors.New("property not found")
	ErrUnknownBid      = errors.New("bid index out of range")
	ErrPropertyNotOpen = errors.New("property is not open for bidding")
	ErrAlreadyRevealed = errors.New("bid already revealed")
)

// Lifecycle and verification errors
var (
	ErrInvalidDuration         = errors.New("auction duration must be positive")
	ErrBiddingNotStarted       = errors.New("bidding window has not started")
	ErrBiddingEnded            = errors.New("bidding window has ended")
	ErrMalformedCiphertext     = errors.New("encrypted amount is not well-formed")
	ErrProofVerificationFailed = errors.New("decryption proof rejected")
	ErrAuctionStillOpen        = errors.New("bidding window is still open")
	ErrAlreadyConcluded        = errors.New("auction already concluded")
	ErrIncompleteReveal        = errors.New("not all bids have been revealed")
)
