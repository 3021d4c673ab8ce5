package server

import (
	auction "housebid/internal/auctionService"
	handler "housebid/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	properties := router.Group("/properties")
	{
		properties.POST("", auctionHandler.ListPropertyHandler)
		properties.GET("", auctionHandler.ListPropertyIDsHandler)
		properties.GET("/:property_id", auctionHandler.GetPropertyHandler)
		properties.POST("/:property_id/bids", auctionHandler.SubmitBidHandler)
		properties.GET("/:property_id/bids/:bid_index", auctionHandler.GetBidHandler)
		properties.POST("/:property_id/bids/:bid_index/reveal", auctionHandler.RevealBidHandler)
		properties.POST("/:property_id/conclude", auctionHandler.ConcludeAuctionHandler)
	}

	return router
}
