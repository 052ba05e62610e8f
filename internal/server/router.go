package server

import (
	market "auction-marketplace/internal/marketService"
	handler "auction-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.MarketService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // request correlation
	router.Use(ViewerMiddleware)        // who is calling
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", marketHandler.ListAuctionsHandler)
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("/mine", marketHandler.ListMyAuctionsHandler)
		auctions.GET("/:auction_id", marketHandler.GetAuctionHandler)
		auctions.DELETE("/:auction_id", marketHandler.DeleteAuctionHandler)
		auctions.GET("/:auction_id/bids", marketHandler.GetBidsHandler)
		auctions.POST("/:auction_id/bids", marketHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/messages/:user", marketHandler.GetThreadHandler)
		auctions.POST("/:auction_id/messages/:user", marketHandler.SendMessageHandler)
		auctions.POST("/:auction_id/messages/:user/read", marketHandler.MarkThreadReadHandler)
	}

	messages := router.Group("/messages")
	{
		messages.GET("/inbox", marketHandler.GetInboxHandler)
		messages.GET("/sent", marketHandler.GetSentHandler)
	}

	return router
}
