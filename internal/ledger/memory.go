package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
)

// MemoryLedger is an in-process RecordStore used when no database is
// configured and by tests.
type MemoryLedger struct {
	mu           sync.RWMutex
	nfts         map[string]model.NFT
	transactions []model.Transaction
}

// NewMemoryLedger creates an empty in-memory record store
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		nfts: make(map[string]model.NFT),
	}
}

// AddNFT seeds an NFT record
func (l *MemoryLedger) AddNFT(nft model.NFT) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nfts[nft.NFTID] = nft
}

// GetNFT returns the NFT record with the given id
func (l *MemoryLedger) GetNFT(_ context.Context, nftID string) (model.NFT, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	nft, ok := l.nfts[nftID]
	if !ok {
		return model.NFT{}, fmt.Errorf("get nft %s: %w", nftID, ErrNFTNotFound)
	}
	return nft, nil
}

// UpdateNFTOwnership marks the NFT's owner to the buyer and unlists it
func (l *MemoryLedger) UpdateNFTOwnership(_ context.Context, nftID, newOwner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	nft, ok := l.nfts[nftID]
	if !ok {
		return fmt.Errorf("update ownership of nft %s: %w", nftID, ErrNFTNotFound)
	}
	nft.Owner = newOwner
	nft.Listed = false
	nft.UpdatedAt = time.Now().UTC()
	l.nfts[nftID] = nft
	return nil
}

// InsertTransaction records a completed purchase
func (l *MemoryLedger) InsertTransaction(_ context.Context, tx model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, tx)
	return nil
}

// Transactions returns a copy of the recorded transactions
func (l *MemoryLedger) Transactions() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Transaction(nil), l.transactions...)
}
