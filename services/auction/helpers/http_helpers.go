package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"housebid/internal/auctionerrors"
	"housebid/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUnknownProperty):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, auctionerrors.ErrUnknownBid):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrDuplicateID):
		return http.StatusConflict, "property id already listed"
	case errors.Is(err, auctionerrors.ErrInvalidDuration):
		return http.StatusBadRequest, "invalid auction duration"
	case errors.Is(err, auctionerrors.ErrMalformedCiphertext):
		return http.StatusBadRequest, "malformed encrypted amount"
	case errors.Is(err, auctionerrors.ErrBiddingNotStarted):
		return http.StatusConflict, "bidding has not started"
	case errors.Is(err, auctionerrors.ErrBiddingEnded):
		return http.StatusConflict, "bidding has ended"
	case errors.Is(err, auctionerrors.ErrPropertyNotOpen):
		return http.StatusConflict, "property is not open for bidding"
	case errors.Is(err, auctionerrors.ErrAlreadyRevealed):
		return http.StatusConflict, "bid already revealed"
	case errors.Is(err, auctionerrors.ErrProofVerificationFailed):
		return http.StatusUnprocessableEntity, "decryption proof rejected"
	case errors.Is(err, auctionerrors.ErrAuctionStillOpen):
		return http.StatusConflict, "auction is still open"
	case errors.Is(err, auctionerrors.ErrAlreadyConcluded):
		return http.StatusConflict, "auction already concluded"
	case errors.Is(err, auctionerrors.ErrIncompleteReveal):
		return http.StatusConflict, "not all bids revealed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
