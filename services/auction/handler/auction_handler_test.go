package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"housebid/internal/auctionerrors"
	"housebid/internal/models"
	"housebid/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockAuctionServiceInterface, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/properties", handler.ListPropertyHandler)
	router.GET("/properties", handler.ListPropertyIDsHandler)
	router.GET("/properties/:property_id", handler.GetPropertyHandler)
	router.POST("/properties/:property_id/bids", handler.SubmitBidHandler)
	router.GET("/properties/:property_id/bids/:bid_index", handler.GetBidHandler)
	router.POST("/properties/:property_id/bids/:bid_index/reveal", handler.RevealBidHandler)
	router.POST("/properties/:property_id/conclude", handler.ConcludeAuctionHandler)

	return mockService, router
}

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test ListPropertyHandler
func TestListPropertyHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
	}{
		{
			name: "success_valid_listing",
			requestBody: helpers.ListPropertyRequest{
				PropertyID:      "prop1",
				Details:         "two bed flat",
				Seller:          "seller1",
				DurationSeconds: 3600,
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					ListProperty("prop1", "two bed flat", "seller1", time.Hour).
					Return(models.Property{
						ID:        "prop1",
						Details:   "two bed flat",
						Seller:    "seller1",
						StartTime: now,
						EndTime:   now.Add(time.Hour),
						Status:    models.StatusOpen,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_json",
			requestBody:    "{property_id: 'missing quotes'}",
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_seller",
			requestBody: helpers.ListPropertyRequest{
				PropertyID:      "prop1",
				DurationSeconds: 3600,
			},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative_duration_fails_binding",
			requestBody: map[string]any{
				"property_id":      "prop1",
				"seller":           "seller1",
				"duration_seconds": -5,
			},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate_id_conflict",
			requestBody: helpers.ListPropertyRequest{
				PropertyID:      "prop1",
				Seller:          "seller1",
				DurationSeconds: 3600,
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					ListProperty("prop1", "", "seller1", time.Hour).
					Return(models.Property{}, fmt.Errorf("service: %w", auctionerrors.ErrDuplicateID))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := setupHandlerTest(t)
			tc.mockSetup(mockService)

			w := performRequest(t, router, http.MethodPost, "/properties", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test SubmitBidHandler
func TestSubmitBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.SubmitBidRequest{
				Bidder:          "bidder1",
				EncryptedAmount: "ct1",
				SubmissionProof: "proof",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					SubmitBid("prop1", "bidder1", "ct1", "proof").
					Return(2, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "bidding_ended_conflict",
			requestBody: helpers.SubmitBidRequest{
				Bidder:          "bidder1",
				EncryptedAmount: "ct1",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					SubmitBid("prop1", "bidder1", "ct1", "").
					Return(0, fmt.Errorf("service: %w", auctionerrors.ErrBiddingEnded))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "malformed_ciphertext_bad_request",
			requestBody: helpers.SubmitBidRequest{
				Bidder:          "bidder1",
				EncryptedAmount: "garbage",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					SubmitBid("prop1", "bidder1", "garbage", "").
					Return(0, fmt.Errorf("service: %w", auctionerrors.ErrMalformedCiphertext))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_property_not_found",
			requestBody: helpers.SubmitBidRequest{
				Bidder:          "bidder1",
				EncryptedAmount: "ct1",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					SubmitBid("prop1", "bidder1", "ct1", "").
					Return(0, fmt.Errorf("service: %w", auctionerrors.ErrUnknownProperty))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_bidder",
			requestBody:    helpers.SubmitBidRequest{EncryptedAmount: "ct1"},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := setupHandlerTest(t)
			tc.mockSetup(mockService)

			w := performRequest(t, router, http.MethodPost, "/properties/prop1/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, float64(2), data["bid_index"])
			}
		})
	}
}

// Test RevealBidHandler
func TestRevealBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success_valid_reveal",
			url:         "/properties/prop1/bids/0/reveal",
			requestBody: helpers.RevealBidRequest{ClearAmount: 42, DecryptionProof: "proof"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RevealBid("prop1", 0, uint64(42), "proof").Return(nil)
				m.EXPECT().GetBid("prop1", 0).Return(models.Bid{
					Bidder:          "bidder1",
					EncryptedAmount: "ct1",
					SubmittedAt:     time.Now().UTC(),
					RevealState:     models.RevealRevealed,
					ClearAmount:     42,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "proof_rejected",
			url:         "/properties/prop1/bids/0/reveal",
			requestBody: helpers.RevealBidRequest{ClearAmount: 42, DecryptionProof: "bad"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					RevealBid("prop1", 0, uint64(42), "bad").
					Return(fmt.Errorf("service: %w", auctionerrors.ErrProofVerificationFailed))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "already_revealed",
			url:         "/properties/prop1/bids/0/reveal",
			requestBody: helpers.RevealBidRequest{ClearAmount: 42, DecryptionProof: "proof"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					RevealBid("prop1", 0, uint64(42), "proof").
					Return(fmt.Errorf("service: %w", auctionerrors.ErrAlreadyRevealed))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "non_numeric_bid_index",
			url:            "/properties/prop1/bids/abc/reveal",
			requestBody:    helpers.RevealBidRequest{ClearAmount: 42},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := setupHandlerTest(t)
			tc.mockSetup(mockService)

			w := performRequest(t, router, http.MethodPost, tc.url, tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test ConcludeAuctionHandler
func TestConcludeAuctionHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_with_winner",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					ConcludeAuction("prop1").
					Return(&models.WinningBid{Bidder: "bidder1", Amount: 70}, nil)
			},
			expectedStatus: http.StatusOK,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "bidder1", data["winner"])
				require.Equal(t, float64(70), data["winning_amount"])
				require.Equal(t, true, data["had_bids"])
			},
		},
		{
			name: "success_zero_bids",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ConcludeAuction("prop1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "", data["winner"])
				require.Equal(t, float64(0), data["winning_amount"])
				require.Equal(t, false, data["had_bids"])
			},
		},
		{
			name: "still_open_conflict",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					ConcludeAuction("prop1").
					Return(nil, fmt.Errorf("service: %w", auctionerrors.ErrAuctionStillOpen))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "incomplete_reveal_conflict",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					ConcludeAuction("prop1").
					Return(nil, fmt.Errorf("service: %w", auctionerrors.ErrIncompleteReveal))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := setupHandlerTest(t)
			tc.mockSetup(mockService)

			w := performRequest(t, router, http.MethodPost, "/properties/prop1/conclude", nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.validateData != nil {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetPropertyHandler and GetBidHandler
func TestQueryHandlers(t *testing.T) {
	t.Run("get_property_found", func(t *testing.T) {
		mockService, router := setupHandlerTest(t)
		now := time.Now().UTC()

		mockService.EXPECT().GetProperty("prop1").Return(models.Property{
			ID:        "prop1",
			Details:   "details",
			Seller:    "seller1",
			StartTime: now,
			EndTime:   now.Add(time.Hour),
			Status:    models.StatusOpen,
			Bids:      []models.Bid{{Bidder: "bidder1"}},
		}, nil)

		w := performRequest(t, router, http.MethodGet, "/properties/prop1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "prop1", data["property_id"])
		require.Equal(t, float64(1), data["bid_count"])
	})

	t.Run("get_property_not_found", func(t *testing.T) {
		mockService, router := setupHandlerTest(t)

		mockService.EXPECT().
			GetProperty("nope").
			Return(models.Property{}, fmt.Errorf("service: %w", auctionerrors.ErrUnknownProperty))

		w := performRequest(t, router, http.MethodGet, "/properties/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get_bid_hides_clear_amount_while_pending", func(t *testing.T) {
		mockService, router := setupHandlerTest(t)

		mockService.EXPECT().GetBid("prop1", 0).Return(models.Bid{
			Bidder:          "bidder1",
			EncryptedAmount: "ct1",
			SubmittedAt:     time.Now().UTC(),
			RevealState:     models.RevealPending,
		}, nil)

		w := performRequest(t, router, http.MethodGet, "/properties/prop1/bids/0", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "pending", data["reveal_state"])
		_, hasClear := data["clear_amount"]
		require.False(t, hasClear)
	})

	t.Run("list_property_ids", func(t *testing.T) {
		mockService, router := setupHandlerTest(t)

		mockService.EXPECT().PropertyIDs().Return([]string{"prop1", "prop2"})

		w := performRequest(t, router, http.MethodGet, "/properties", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 2)
	})
}
