package auctionerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
)

// Business logic errors
var (
	ErrInvalidAuction     = errors.New("invalid auction")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrAuctionNotActive   = errors.New("auction is not active")
	ErrAuctionExpired     = errors.New("auction has expired")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrNFTNotForSale      = errors.New("nft is not listed for sale")
)

// Payment errors
var (
	ErrPaymentFailed    = errors.New("payment failed")
	ErrSettlementFailed = errors.New("settlement failed")
)
