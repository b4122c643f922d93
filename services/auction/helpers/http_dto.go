package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	NFTID         string  `json:"nft_id" binding:"required"`
	Seller        string  `json:"seller" binding:"required"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	ReservePrice  float64 `json:"reserve_price" binding:"omitempty,gt=0"`
	StartTime     int64   `json:"start_time"` // epoch milliseconds, optional
	EndTime       int64   `json:"end_time" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Bidder string  `json:"bidder" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BuyNFTRequest struct {
	Buyer string `json:"buyer" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	Bidder    string  `json:"bidder"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// AuctionResponse is the auction card view: price, bid count, status and
// the remaining time recomputed per request.
type AuctionResponse struct {
	AuctionID     string  `json:"auction_id"`
	NFTID         string  `json:"nft_id"`
	Seller        string  `json:"seller"`
	StartingPrice float64 `json:"starting_price"`
	CurrentPrice  float64 `json:"current_price"`
	ReservePrice  float64 `json:"reserve_price,omitempty"`
	Status        string  `json:"status"`
	TotalBids     int     `json:"total_bids"`
	HighestBidID  string  `json:"highest_bid_id,omitempty"`
	EndTime       string  `json:"end_time"`
	TimeRemaining string  `json:"time_remaining"`
}

type PurchaseResponse struct {
	NFTID     string `json:"nft_id"`
	Buyer     string `json:"buyer"`
	Signature string `json:"signature"`
}

type BalanceResponse struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}
