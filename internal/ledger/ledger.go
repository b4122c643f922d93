package ledger

import (
	"context"

	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
)

// RecordStore is the record-of-truth collaborator holding NFT and
// transaction records. Auctions and bids never reach it; only completed
// purchases do.
type RecordStore interface {
	GetNFT(ctx context.Context, nftID string) (model.NFT, error)
	UpdateNFTOwnership(ctx context.Context, nftID, newOwner string) error
	InsertTransaction(ctx context.Context, tx model.Transaction) error
}
