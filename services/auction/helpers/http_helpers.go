package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/auctionerrors"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/ledger"
	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"

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
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, ledger.ErrNFTNotFound):
		return http.StatusNotFound, "nft not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrWalletNotConnected):
		return http.StatusUnauthorized, "wallet not connected"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrNFTNotForSale):
		return http.StatusConflict, "nft is not listed for sale"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusGone, "auction has expired"
	case errors.Is(err, auctionerrors.ErrPaymentFailed):
		return http.StatusBadGateway, "payment failed"
	case errors.Is(err, auctionerrors.ErrSettlementFailed):
		return http.StatusBadGateway, "settlement failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewAuctionResponse builds the auction card view at now
func NewAuctionResponse(a model.Auction, now time.Time) AuctionResponse {
	return AuctionResponse{
		AuctionID:     a.AuctionID,
		NFTID:         a.NFTID,
		Seller:        a.Seller,
		StartingPrice: a.StartingPrice,
		CurrentPrice:  a.CurrentPrice,
		ReservePrice:  a.ReservePrice,
		Status:        string(a.Status),
		TotalBids:     a.TotalBids,
		HighestBidID:  a.HighestBidID,
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		TimeRemaining: TimeRemaining(a, now),
	}
}

// NewBidResponse converts a bid into its wire form
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		Bidder:    b.Bidder,
		Amount:    b.Amount,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TimeRemaining renders the time left on an auction floored into days,
// hours and minutes, "ended" once the end time has passed.
func TimeRemaining(a model.Auction, now time.Time) string {
	if a.Status != model.AuctionStatusActive || a.Expired(now) {
		return "ended"
	}

	left := a.EndTime.Sub(now)
	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// EpochMillis converts an epoch-milliseconds wire value into a time.Time,
// zero when unset.
func EpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
