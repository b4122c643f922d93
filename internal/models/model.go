package models

import "time"

// AuctionStatus is the lifecycle state of an auction. Once an auction
// reaches ended or cancelled it never transitions again.
type AuctionStatus string

const (
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusEnded     AuctionStatus = "ended"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// BidStatus is the lifecycle state of a single bid.
type BidStatus string

const (
	BidStatusActive    BidStatus = "active"
	BidStatusWon       BidStatus = "won"
	BidStatusOutbid    BidStatus = "outbid"
	BidStatusCancelled BidStatus = "cancelled"
)

// Auction represents a time-boxed sale of one NFT accepting successive
// higher bids. CurrentPrice equals StartingPrice until a bid is accepted,
// thereafter the amount of the highest active bid. ReservePrice of 0 means
// no reserve is set.
type Auction struct {
	AuctionID     string        `json:"auction_id"`
	NFTID         string        `json:"nft_id"`
	Seller        string        `json:"seller"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  float64       `json:"current_price"`
	ReservePrice  float64       `json:"reserve_price,omitempty"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        AuctionStatus `json:"status"`
	HighestBidID  string        `json:"highest_bid_id,omitempty"`
	TotalBids     int           `json:"total_bids"`
}

// Expired reports whether the auction's end time has passed at now.
// Expiry does not flip Status by itself; the terminal state is persisted
// only through the bidding engine.
func (a Auction) Expired(now time.Time) bool {
	return now.After(a.EndTime)
}

// HasReserve reports whether a reserve price is set.
func (a Auction) HasReserve() bool {
	return a.ReservePrice > 0
}

// Bid represents one offer of payment amount by one wallet against an auction.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	NFTID     string    `json:"nft_id"`
	Bidder    string    `json:"bidder"`
	Amount    float64   `json:"amount"`
	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NFT is the record-of-truth entry for an asset, persisted by the ledger
// collaborator rather than the in-memory auction store.
type NFT struct {
	NFTID     string    `json:"nft_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Owner     string    `json:"owner"`
	Price     float64   `json:"price"`
	Listed    bool      `json:"listed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction records a completed purchase: buyer, seller, price and the
// chain confirmation signature.
type Transaction struct {
	TxID      string    `json:"tx_id"`
	NFTID     string    `json:"nft_id"`
	Buyer     string    `json:"buyer"`
	Seller    string    `json:"seller"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}
