package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"housebid/internal/models"
	"housebid/services/auction/helpers"
	"housebid/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListProperty(id, details, seller string, duration time.Duration) (models.Property, error)
	SubmitBid(propertyID, bidder, encryptedAmount, submissionProof string) (int, error)
	RevealBid(propertyID string, bidIndex int, claimedClearValue uint64, decryptionProof string) error
	ConcludeAuction(propertyID string) (*models.WinningBid, error)
	GetProperty(propertyID string) (models.Property, error)
	GetBid(propertyID string, bidIndex int) (models.Bid, error)
	BidCount(propertyID string) (int, error)
	PropertyIDs() []string
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListPropertyHandler handles POST /properties
func (h *AuctionHandler) ListPropertyHandler(c *gin.Context) {
	var req helpers.ListPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListPropertyHandler", err)
		return
	}

	prop, err := h.service.ListProperty(req.PropertyID, req.Details, req.Seller, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListPropertyHandler: failed to list property", map[string]any{
			"handler":     "ListPropertyHandler",
			"property_id": req.PropertyID,
			"seller":      req.Seller,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, propertyResponse(prop), "property listed successfully")
	helpers.LogSuccess("ListPropertyHandler", "property listed successfully", map[string]any{
		"property_id": prop.ID,
		"seller":      prop.Seller,
		"end_time":    prop.EndTime,
	})
}

// SubmitBidHandler handles POST /properties/:property_id/bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bidIndex, err := h.service.SubmitBid(propertyID, req.Bidder, req.EncryptedAmount, req.SubmissionProof)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitBidHandler: failed to submit bid", map[string]any{
			"property_id": propertyID,
			"bidder":      req.Bidder,
			"error":       err.Error(),
		})
		return
	}

	resp := helpers.SubmitBidResponse{
		PropertyID: propertyID,
		BidIndex:   bidIndex,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"property_id": propertyID,
		"bidder":      req.Bidder,
		"bid_index":   bidIndex,
	})
}

// RevealBidHandler handles POST /properties/:property_id/bids/:bid_index/reveal
func (h *AuctionHandler) RevealBidHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	bidIndex, err := strconv.Atoi(c.Param("bid_index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bid index: %w", err), "invalid bid index")
		return
	}

	var req helpers.RevealBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}

	if err := h.service.RevealBid(propertyID, bidIndex, req.ClearAmount, req.DecryptionProof); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RevealBidHandler: failed to reveal bid", map[string]any{
			"property_id": propertyID,
			"bid_index":   bidIndex,
			"error":       err.Error(),
		})
		return
	}

	bid, err := h.service.GetBid(propertyID, bidIndex)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(propertyID, bidIndex, bid), "bid revealed successfully")
	helpers.LogSuccess("RevealBidHandler", "bid revealed successfully", map[string]any{
		"property_id":  propertyID,
		"bid_index":    bidIndex,
		"clear_amount": req.ClearAmount,
	})
}

// ConcludeAuctionHandler handles POST /properties/:property_id/conclude
func (h *AuctionHandler) ConcludeAuctionHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	winner, err := h.service.ConcludeAuction(propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ConcludeAuctionHandler: failed to conclude auction", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	resp := helpers.ConcludeResponse{PropertyID: propertyID}
	if winner != nil {
		resp.Winner = winner.Bidder
		resp.WinningAmount = winner.Amount
		resp.HadBids = true
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction concluded successfully")
	helpers.LogSuccess("ConcludeAuctionHandler", "auction concluded successfully", map[string]any{
		"property_id":    propertyID,
		"winner":         resp.Winner,
		"winning_amount": resp.WinningAmount,
	})
}

// GetPropertyHandler handles GET /properties/:property_id
func (h *AuctionHandler) GetPropertyHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	prop, err := h.service.GetProperty(propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPropertyHandler: error retrieving property", map[string]any{"property_id": propertyID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, propertyResponse(prop), "property retrieved successfully")
}

// GetBidHandler handles GET /properties/:property_id/bids/:bid_index
func (h *AuctionHandler) GetBidHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	bidIndex, err := strconv.Atoi(c.Param("bid_index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bid index: %w", err), "invalid bid index")
		return
	}

	bid, err := h.service.GetBid(propertyID, bidIndex)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{
			"property_id": propertyID,
			"bid_index":   bidIndex,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(propertyID, bidIndex, bid), "bid retrieved successfully")
}

// ListPropertyIDsHandler handles GET /properties
func (h *AuctionHandler) ListPropertyIDsHandler(c *gin.Context) {
	ids := h.service.PropertyIDs()
	if ids == nil {
		ids = []string{}
	}

	utils.JSONResponse(c, http.StatusOK, ids, "properties retrieved successfully")
}

func propertyResponse(prop models.Property) helpers.PropertyResponse {
	return helpers.PropertyResponse{
		PropertyID: prop.ID,
		Details:    prop.Details,
		Seller:     prop.Seller,
		StartTime:  prop.StartTime.UTC().Format(time.RFC3339),
		EndTime:    prop.EndTime.UTC().Format(time.RFC3339),
		Status:     string(prop.Status),
		BidCount:   len(prop.Bids),
	}
}

func bidResponse(propertyID string, bidIndex int, bid models.Bid) helpers.BidResponse {
	resp := helpers.BidResponse{
		PropertyID:  propertyID,
		BidIndex:    bidIndex,
		Bidder:      bid.Bidder,
		SubmittedAt: bid.SubmittedAt.UTC().Format(time.RFC3339),
		RevealState: string(bid.RevealState),
	}
	if bid.RevealState == models.RevealRevealed {
		resp.ClearAmount = bid.ClearAmount
	}
	return resp
}
