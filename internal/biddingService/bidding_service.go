package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/auctionerrors"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/ledger"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/repository"
	solanasvc "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/solana"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"
)

// BiddingService enacts the auction state machine over the auction store.
// Every mutating operation on one auction is serialized by a per-auction
// mutex held across the whole validate, pay, commit sequence, so two bids
// racing past validation can never both commit as highest.
type BiddingService struct {
	store   repository.AuctionStore
	gateway solanasvc.Gateway
	records ledger.RecordStore
	locks   sync.Map // key: auctionID -> *sync.Mutex
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store repository.AuctionStore, gateway solanasvc.Gateway, records ledger.RecordStore) *BiddingService {
	return &BiddingService{
		store:   store,
		gateway: gateway,
		records: records,
	}
}

// lockAuction returns the mutex serializing mutations of one auction
func (s *BiddingService) lockAuction(auctionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(auctionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CreateAuction validates and registers a new active auction for an NFT
func (s *BiddingService) CreateAuction(seller, nftID string, startingPrice, reservePrice float64, startTime, endTime time.Time) (models.Auction, error) {
	if seller == "" || nftID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing seller or nft id", auctionerrors.ErrInvalidAuction)
	}
	if startingPrice < 0 || reservePrice < 0 {
		return models.Auction{}, fmt.Errorf("service: %w - negative price", auctionerrors.ErrInvalidAuction)
	}
	if startTime.IsZero() {
		startTime = time.Now().UTC()
	}
	if !endTime.After(startTime) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		NFTID:         nftID,
		Seller:        seller,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		ReservePrice:  reservePrice,
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        models.AuctionStatusActive,
	}

	if err := s.store.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for nft %s: %w", nftID, err)
	}
	return auction, nil
}

// GetAuction returns one auction by id
func (s *BiddingService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction id", auctionerrors.ErrInvalidAuction)
	}
	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns every auction, or only live ones when activeOnly is
// set. Liveness is a derived predicate: active status and end time not yet
// passed.
func (s *BiddingService) ListAuctions(activeOnly bool) []models.Auction {
	if activeOnly {
		return s.store.ListActiveAuctions(time.Now().UTC())
	}
	return s.store.ListAuctions()
}

// GetBidsForAuction returns the bid history of an auction in acceptance order
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if _, err := s.store.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return s.store.GetBidsByAuction(auctionID), nil
}

// PlaceBid validates a bid against the auction's current state, escrows the
// funds and commits the new highest bid. The per-auction lock is held across
// the payment wait, so the validated price cannot be outdated at commit time.
func (s *BiddingService) PlaceBid(ctx context.Context, wallet solanasvc.Wallet, auctionID string, amount float64) (models.Bid, error) {
	if !wallet.Connected() {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrWalletNotConnected)
	}

	mu := s.lockAuction(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}
	if auction.Status != models.AuctionStatusActive {
		return models.Bid{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}
	// Expiry is detected lazily here; the sweeper persists the terminal state.
	if auction.Expired(time.Now().UTC()) {
		return models.Bid{}, fmt.Errorf("service: %w - auction %s ended at %s", auctionerrors.ErrAuctionExpired, auctionID, auction.EndTime.Format(time.RFC3339))
	}
	if amount <= auction.CurrentPrice {
		return models.Bid{}, fmt.Errorf("service: %w - current price is %.2f", auctionerrors.ErrBidTooLow, auction.CurrentPrice)
	}

	if err := s.gateway.EscrowBid(ctx, wallet, amount); err != nil {
		if errors.Is(err, auctionerrors.ErrWalletNotConnected) {
			return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
		}
		return models.Bid{}, fmt.Errorf("service: %w - escrow for auction %s: %v", auctionerrors.ErrPaymentFailed, auctionID, err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		NFTID:     auction.NFTID,
		Bidder:    wallet.Address(),
		Amount:    amount,
		Status:    models.BidStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	outbidID := auction.HighestBidID
	auction.CurrentPrice = amount
	auction.HighestBidID = bid.BidID
	auction.TotalBids++

	if err := s.store.AppendBid(auctionID, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s: %w", auctionID, err)
	}
	if err := s.store.SaveAuction(auction); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to commit auction %s: %w", auctionID, err)
	}

	if outbidID != "" {
		if err := s.store.UpdateBidStatus(auctionID, outbidID, models.BidStatusOutbid); err != nil {
			utils.Warn("failed to mark previous highest bid as outbid", map[string]any{
				"auction_id": auctionID,
				"bid_id":     outbidID,
				"error":      err.Error(),
			})
		} else {
			utils.Info("bid outbid", map[string]any{
				"auction_id": auctionID,
				"bid_id":     outbidID,
				"new_price":  amount,
			})
		}
	}

	return bid, nil
}

// EndAuction flips an active auction to its terminal ended state and runs
// settlement. The status commit is irreversible: a settlement or refund
// failure surfaces as ErrSettlementFailed layered on the already-ended
// auction, never as a rollback.
func (s *BiddingService) EndAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	mu := s.lockAuction(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: end auction: %w", err)
	}
	if auction.Status != models.AuctionStatusActive {
		return models.Auction{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}

	auction.Status = models.AuctionStatusEnded
	if err := s.store.SaveAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to end auction %s: %w", auctionID, err)
	}

	if auction.HighestBidID == "" {
		utils.Info("auction ended with no bids", map[string]any{"auction_id": auctionID})
		return auction, nil
	}

	highest, ok := s.findBid(auctionID, auction.HighestBidID)
	if !ok {
		return auction, fmt.Errorf("service: %w - highest bid %s missing for auction %s", auctionerrors.ErrSettlementFailed, auction.HighestBidID, auctionID)
	}

	if !auction.HasReserve() || highest.Amount >= auction.ReservePrice {
		if err := s.store.UpdateBidStatus(auctionID, highest.BidID, models.BidStatusWon); err != nil {
			return auction, fmt.Errorf("service: %w - mark winning bid: %v", auctionerrors.ErrSettlementFailed, err)
		}
		if err := s.gateway.FinalizeAuction(ctx, auction); err != nil {
			return auction, fmt.Errorf("service: %w - finalize auction %s: %v", auctionerrors.ErrSettlementFailed, auctionID, err)
		}
		utils.Info("auction ended, reserve met", map[string]any{
			"auction_id":  auctionID,
			"winner":      highest.Bidder,
			"final_price": highest.Amount,
		})
		return auction, nil
	}

	if err := s.gateway.RefundBid(ctx, highest); err != nil {
		return auction, fmt.Errorf("service: %w - refund bid %s: %v", auctionerrors.ErrSettlementFailed, highest.BidID, err)
	}
	utils.Info("auction ended below reserve, highest bid refunded", map[string]any{
		"auction_id":    auctionID,
		"highest_bid":   highest.Amount,
		"reserve_price": auction.ReservePrice,
	})
	return auction, nil
}

// CancelBid refunds and cancels a bid owned by the calling wallet. If the
// cancelled bid was the highest, the auction's price falls back to the best
// remaining active bid, or to the starting price when none remains.
func (s *BiddingService) CancelBid(ctx context.Context, wallet solanasvc.Wallet, bidID string) (models.Bid, error) {
	if !wallet.Connected() {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrWalletNotConnected)
	}

	// First lookup only learns the owning auction so it can be locked;
	// state is re-read under the lock.
	_, auctionID, err := s.store.FindBidByBidder(bidID, wallet.Address())
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: cancel bid: %w", err)
	}

	mu := s.lockAuction(auctionID)
	mu.Lock()
	defer mu.Unlock()

	bid, auctionID, err := s.store.FindBidByBidder(bidID, wallet.Address())
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: cancel bid: %w", err)
	}
	if bid.Status == models.BidStatusCancelled {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s already cancelled", auctionerrors.ErrBidNotFound, bidID)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: cancel bid: %w", err)
	}
	if auction.Status != models.AuctionStatusActive {
		return models.Bid{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}

	if err := s.gateway.RefundBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - refund bid %s: %v", auctionerrors.ErrSettlementFailed, bidID, err)
	}

	if err := s.store.UpdateBidStatus(auctionID, bidID, models.BidStatusCancelled); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to cancel bid %s: %w", bidID, err)
	}
	bid.Status = models.BidStatusCancelled

	if auction.HighestBidID == bidID {
		if next, ok := s.highestStandingBid(auctionID); ok {
			// An outbid bid promoted back to the lead becomes active again;
			// its escrow was never refunded.
			if next.Status == models.BidStatusOutbid {
				if err := s.store.UpdateBidStatus(auctionID, next.BidID, models.BidStatusActive); err != nil {
					return models.Bid{}, fmt.Errorf("service: failed to restore bid %s: %w", next.BidID, err)
				}
			}
			auction.CurrentPrice = next.Amount
			auction.HighestBidID = next.BidID
		} else {
			auction.CurrentPrice = auction.StartingPrice
			auction.HighestBidID = ""
		}
		if err := s.store.SaveAuction(auction); err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to commit auction %s: %w", auctionID, err)
		}
	}

	utils.Info("bid cancelled", map[string]any{
		"auction_id": auctionID,
		"bid_id":     bidID,
		"bidder":     bid.Bidder,
	})
	return bid, nil
}

// CloseExpiredAuctions ends every active auction whose end time has passed,
// returning the number closed. Driven by a ticker in main.
func (s *BiddingService) CloseExpiredAuctions(ctx context.Context) int {
	now := time.Now().UTC()
	closed := 0
	for _, auction := range s.store.ListAuctions() {
		if auction.Status != models.AuctionStatusActive || !auction.Expired(now) {
			continue
		}
		if _, err := s.EndAuction(ctx, auction.AuctionID); err != nil {
			// ErrAuctionNotActive means someone ended it between the list
			// and the lock; anything else is worth logging.
			if !errors.Is(err, auctionerrors.ErrAuctionNotActive) {
				utils.Error("failed to close expired auction", map[string]any{
					"auction_id": auction.AuctionID,
					"error":      err.Error(),
				})
			}
			continue
		}
		closed++
	}
	return closed
}

// BuyNFT performs a direct (non-auction) purchase of a listed NFT
func (s *BiddingService) BuyNFT(ctx context.Context, wallet solanasvc.Wallet, nftID string) (string, error) {
	if !wallet.Connected() {
		return "", fmt.Errorf("service: %w", auctionerrors.ErrWalletNotConnected)
	}

	nft, err := s.records.GetNFT(ctx, nftID)
	if err != nil {
		return "", fmt.Errorf("service: buy nft: %w", err)
	}
	if !nft.Listed {
		return "", fmt.Errorf("service: %w - nft %s", auctionerrors.ErrNFTNotForSale, nftID)
	}

	signature, err := s.gateway.BuyNFT(ctx, wallet, nft, nft.Price)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrWalletNotConnected) {
			return "", fmt.Errorf("service: buy nft: %w", err)
		}
		return "", fmt.Errorf("service: %w - purchase of nft %s: %v", auctionerrors.ErrPaymentFailed, nftID, err)
	}
	return signature, nil
}

// GetBalance returns the SOL balance of an address, 0 on any failure
func (s *BiddingService) GetBalance(ctx context.Context, address string) float64 {
	return s.gateway.GetBalance(ctx, address)
}

// findBid scans an auction's bid list for one bid id
func (s *BiddingService) findBid(auctionID, bidID string) (models.Bid, bool) {
	for _, b := range s.store.GetBidsByAuction(auctionID) {
		if b.BidID == bidID {
			return b, true
		}
	}
	return models.Bid{}, false
}

// highestStandingBid returns the standing bid (active or outbid, meaning
// its escrow has not been refunded) with the greatest amount, ties broken
// by earliest timestamp.
func (s *BiddingService) highestStandingBid(auctionID string) (models.Bid, bool) {
	var best models.Bid
	found := false
	for _, b := range s.store.GetBidsByAuction(auctionID) {
		if b.Status != models.BidStatusActive && b.Status != models.BidStatusOutbid {
			continue
		}
		if !found || b.Amount > best.Amount || (b.Amount == best.Amount && b.CreatedAt.Before(best.CreatedAt)) {
			best = b
			found = true
		}
	}
	return best, found
}
