package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	solanasvc "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/solana"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/services/auction/helpers"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(seller, nftID string, startingPrice, reservePrice float64, startTime, endTime time.Time) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions(activeOnly bool) []model.Auction
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	PlaceBid(ctx context.Context, wallet solanasvc.Wallet, auctionID string, amount float64) (model.Bid, error)
	EndAuction(ctx context.Context, auctionID string) (model.Auction, error)
	CancelBid(ctx context.Context, wallet solanasvc.Wallet, bidID string) (model.Bid, error)
	BuyNFT(ctx context.Context, wallet solanasvc.Wallet, nftID string) (string, error)
	GetBalance(ctx context.Context, address string) float64
}

type AuctionHandler struct {
	service AuctionServiceInterface
	keyring *solanasvc.Keyring
}

func NewAuctionHandler(service AuctionServiceInterface, keyring *solanasvc.Keyring) *AuctionHandler {
	return &AuctionHandler{service: service, keyring: keyring}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(
		req.Seller,
		req.NFTID,
		req.StartingPrice,
		req.ReservePrice,
		helpers.EpochMillis(req.StartTime),
		helpers.EpochMillis(req.EndTime),
	)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"nft_id": req.NFTID,
			"seller": req.Seller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction, time.Now().UTC()), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"nft_id":     auction.NFTID,
		"seller":     auction.Seller,
	})
}

// ListAuctionsHandler handles GET /auctions?status=active
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	activeOnly := c.Query("status") == "active"
	auctions := h.service.ListAuctions(activeOnly)

	now := time.Now().UTC()
	views := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, helpers.NewAuctionResponse(a, now))
	}

	utils.JSONResponse(c, http.StatusOK, views, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction, time.Now().UTC()), "auction retrieved successfully")
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	views := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		views = append(views, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, views, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(views),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	wallet := h.keyring.Resolve(req.Bidder)
	bid, err := h.service.PlaceBid(c.Request.Context(), wallet, auctionID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"bidder":     req.Bidder,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"bidder":     bid.Bidder,
		"amount":     bid.Amount,
	})
}

// EndAuctionHandler handles POST /auctions/:auction_id/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.EndAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EndAuctionHandler: failed to end auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction, time.Now().UTC()), "auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction ended successfully", map[string]any{
		"auction_id":  auctionID,
		"final_price": auction.CurrentPrice,
	})
}

// CancelBidHandler handles DELETE /bids/:bid_id?bidder=ADDRESS
func (h *AuctionHandler) CancelBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	bidder := c.Query("bidder")

	wallet := h.keyring.Resolve(bidder)
	bid, err := h.service.CancelBid(c.Request.Context(), wallet, bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelBidHandler: failed to cancel bid", map[string]any{
			"bid_id": bidID,
			"bidder": bidder,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid cancelled successfully")
	helpers.LogSuccess("CancelBidHandler", "bid cancelled successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
	})
}

// BuyNFTHandler handles POST /nfts/:nft_id/buy
func (h *AuctionHandler) BuyNFTHandler(c *gin.Context) {
	nftID := c.Param("nft_id")

	var req helpers.BuyNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyNFTHandler", err)
		return
	}

	wallet := h.keyring.Resolve(req.Buyer)
	signature, err := h.service.BuyNFT(c.Request.Context(), wallet, nftID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("BuyNFTHandler: failed to buy nft", map[string]any{
			"nft_id": nftID,
			"buyer":  req.Buyer,
			"error":  err.Error(),
		})
		return
	}

	resp := helpers.PurchaseResponse{NFTID: nftID, Buyer: req.Buyer, Signature: signature}
	utils.JSONResponse(c, http.StatusOK, resp, "nft purchased successfully")
	helpers.LogSuccess("BuyNFTHandler", "nft purchased successfully", map[string]any{
		"nft_id":    nftID,
		"buyer":     req.Buyer,
		"signature": signature,
	})
}

// GetBalanceHandler handles GET /wallets/:address/balance
func (h *AuctionHandler) GetBalanceHandler(c *gin.Context) {
	address := c.Param("address")
	balance := h.service.GetBalance(c.Request.Context(), address)

	utils.JSONResponse(c, http.StatusOK, helpers.BalanceResponse{Address: address, Balance: balance}, "balance retrieved successfully")
}
