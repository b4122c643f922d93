package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/auctionerrors"
	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
)

// AuctionStore defines the auction and bid storage interface. Only the
// bidding service mutates the store; presentation code reads through it.
type AuctionStore interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	SaveAuction(auction model.Auction) error
	ListActiveAuctions(now time.Time) []model.Auction
	ListAuctions() []model.Auction
	AppendBid(auctionID string, bid model.Bid) error
	GetBidsByAuction(auctionID string) []model.Bid
	UpdateBidStatus(auctionID, bidID string, status model.BidStatus) error
	FindBidByBidder(bidID, bidder string) (model.Bid, string, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	bids     map[string][]model.Bid   // key: auctionID -> bids in acceptance order
	order    []string                 // auctionIDs in insertion order
}

// NewMemoryRepo creates a new in-memory store instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
	}
}

// CreateAuction inserts a new auction with an empty bid list
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w - empty auction id", auctionerrors.ErrInvalidAuction)
	}
	if _, ok := r.auctions[auction.AuctionID]; !ok {
		r.order = append(r.order, auction.AuctionID)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction with the given id
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// SaveAuction commits an updated auction snapshot. The auction must exist.
func (r *MemoryRepo) SaveAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("save auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// ListActiveAuctions returns auctions that are active and not past their
// end time at now, in insertion order.
func (r *MemoryRepo) ListActiveAuctions(now time.Time) []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]model.Auction, 0)
	for _, id := range r.order {
		a := r.auctions[id]
		if a.Status == model.AuctionStatusActive && !a.Expired(now) {
			active = append(active, a)
		}
	}
	return active
}

// ListAuctions returns every auction in insertion order
func (r *MemoryRepo) ListAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Auction, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.auctions[id])
	}
	return all
}

// AppendBid appends a bid to an auction's bid list
func (r *MemoryRepo) AppendBid(auctionID string, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("append bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[auctionID] = append(r.bids[auctionID], bid)
	return nil
}

// GetBidsByAuction returns all bids for an auction in acceptance order.
// An unknown auction yields an empty list rather than an error.
func (r *MemoryRepo) GetBidsByAuction(auctionID string) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids[auctionID]...)
}

// UpdateBidStatus mutates the status of one bid in an auction's list
func (r *MemoryRepo) UpdateBidStatus(auctionID, bidID string, status model.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[auctionID]
	for i := range bids {
		if bids[i].BidID == bidID {
			bids[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("update bid %s for auction %s: %w", bidID, auctionID, auctionerrors.ErrBidNotFound)
}

// FindBidByBidder searches every auction's bid list for a bid with the given
// id placed by the given bidder, returning the bid and its owning auction id.
// The bidder match scopes cancellation to the bid's owner.
func (r *MemoryRepo) FindBidByBidder(bidID, bidder string) (model.Bid, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for auctionID, bids := range r.bids {
		for _, b := range bids {
			if b.BidID == bidID && b.Bidder == bidder {
				return b, auctionID, nil
			}
		}
	}
	return model.Bid{}, "", fmt.Errorf("find bid %s for bidder %s: %w", bidID, bidder, auctionerrors.ErrBidNotFound)
}
