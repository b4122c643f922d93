package server

import (
	bidding "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/biddingService"
	solanasvc "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/solana"
	handler "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, keyring *solanasvc.Keyring) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(biddingService, keyring)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/end", auctionHandler.EndAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.DELETE("/:bid_id", auctionHandler.CancelBidHandler)
	}

	nfts := router.Group("/nfts")
	{
		nfts.POST("/:nft_id/buy", auctionHandler.BuyNFTHandler)
	}

	wallets := router.Group("/wallets")
	{
		wallets.GET("/:address/balance", auctionHandler.GetBalanceHandler)
	}

	return router
}
