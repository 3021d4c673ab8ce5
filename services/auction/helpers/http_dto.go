package helpers

// Request/Response DTOs
type ListPropertyRequest struct {
	PropertyID      string `json:"property_id" binding:"required"`
	Details         string `json:"details"`
	Seller          string `json:"seller" binding:"required"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required,gt=0"`
}

type SubmitBidRequest struct {
	Bidder          string `json:"bidder" binding:"required"`
	EncryptedAmount string `json:"encrypted_amount" binding:"required"`
	SubmissionProof string `json:"submission_proof"`
}

type RevealBidRequest struct {
	ClearAmount     uint64 `json:"clear_amount" binding:"required"`
	DecryptionProof string `json:"decryption_proof"`
}

type PropertyResponse struct {
	PropertyID string `json:"property_id"`
	Details    string `json:"details"`
	Seller     string `json:"seller"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	BidCount   int    `json:"bid_count"`
}

type SubmitBidResponse struct {
	PropertyID string `json:"property_id"`
	BidIndex   int    `json:"bid_index"`
}

type BidResponse struct {
	PropertyID  string `json:"property_id"`
	BidIndex    int    `json:"bid_index"`
	Bidder      string `json:"bidder"`
	SubmittedAt string `json:"submitted_at"`
	RevealState string `json:"reveal_state"`
	ClearAmount uint64 `json:"clear_amount,omitempty"`
}

type ConcludeResponse struct {
	PropertyID    string `json:"property_id"`
	Winner        string `json:"winner"`
	WinningAmount uint64 `json:"winning_amount"`
	HadBids       bool   `json:"had_bids"`
}
