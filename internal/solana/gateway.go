package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/auctionerrors"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/ledger"
	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

// Gateway performs native-currency transfers and blocks until the network
// confirms them. Settlement and refund are acknowledged stubs: they log and
// report success without moving funds.
type Gateway interface {
	Purchase(ctx context.Context, wallet Wallet, destination string, amount float64) (string, error)
	BuyNFT(ctx context.Context, wallet Wallet, nft model.NFT, price float64) (string, error)
	EscrowBid(ctx context.Context, wallet Wallet, amount float64) error
	FinalizeAuction(ctx context.Context, auction model.Auction) error
	RefundBid(ctx context.Context, bid model.Bid) error
	GetBalance(ctx context.Context, address string) float64
}

// RPCGateway is a Gateway backed by a Solana JSON-RPC endpoint
type RPCGateway struct {
	client          *rpc.Client
	escrow          solana.PublicKey
	records         ledger.RecordStore
	confirmTimeout  time.Duration
	confirmInterval time.Duration
}

// NewRPCGateway creates a gateway against the given RPC endpoint. Completed
// purchases are recorded through records.
func NewRPCGateway(rpcURL, escrowAddress string, records ledger.RecordStore, confirmTimeout, confirmInterval time.Duration) (*RPCGateway, error) {
	escrow, err := solana.PublicKeyFromBase58(escrowAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid escrow address %s: %w", escrowAddress, err)
	}

	return &RPCGateway{
		client:          rpc.New(rpcURL),
		escrow:          escrow,
		records:         records,
		confirmTimeout:  confirmTimeout,
		confirmInterval: confirmInterval,
	}, nil
}

// Purchase transfers amount SOL from the wallet to destination and waits for
// the network to confirm the transaction, returning its signature.
func (g *RPCGateway) Purchase(ctx context.Context, wallet Wallet, destination string, amount float64) (string, error) {
	if !wallet.Connected() || !wallet.CanSign() {
		return "", fmt.Errorf("gateway: %w", auctionerrors.ErrWalletNotConnected)
	}

	dest, err := solana.PublicKeyFromBase58(destination)
	if err != nil {
		return "", fmt.Errorf("gateway: invalid destination %s: %w", destination, err)
	}

	sig, err := g.transfer(ctx, wallet, dest, lamports(amount))
	if err != nil {
		return "", err
	}

	utils.Info("transfer confirmed", map[string]any{
		"from":      wallet.Address(),
		"to":        destination,
		"amount":    amount,
		"signature": sig.String(),
	})
	return sig.String(), nil
}

// BuyNFT performs a direct purchase: transfers price SOL to the current
// owner, then flips ownership and records the transaction in the ledger.
func (g *RPCGateway) BuyNFT(ctx context.Context, wallet Wallet, nft model.NFT, price float64) (string, error) {
	signature, err := g.Purchase(ctx, wallet, nft.Owner, price)
	if err != nil {
		return "", err
	}

	if err := g.updateNFTOwnership(ctx, nft, wallet.Address(), price, signature); err != nil {
		// Funds moved but the record update failed; surface the error
		// instead of reporting a clean purchase.
		utils.Error("purchase confirmed but record update failed", map[string]any{
			"nft_id": nft.NFTID,
			"buyer":  wallet.Address(),
			"error":  err.Error(),
		})
		return signature, err
	}
	return signature, nil
}

// updateNFTOwnership marks the NFT's owner to the buyer, unlists it and
// inserts a transaction record carrying the confirmation signature.
func (g *RPCGateway) updateNFTOwnership(ctx context.Context, nft model.NFT, buyer string, price float64, signature string) error {
	if err := g.records.UpdateNFTOwnership(ctx, nft.NFTID, buyer); err != nil {
		return fmt.Errorf("gateway: update nft ownership: %w", err)
	}

	tx := model.Transaction{
		TxID:      utils.GenerateShortID(),
		NFTID:     nft.NFTID,
		Buyer:     buyer,
		Seller:    nft.Owner,
		Price:     price,
		Status:    "completed",
		Signature: signature,
		CreatedAt: time.Now().UTC(),
	}
	if err := g.records.InsertTransaction(ctx, tx); err != nil {
		return fmt.Errorf("gateway: insert transaction: %w", err)
	}
	return nil
}

// EscrowBid moves the bid amount to the escrow placeholder address. No
// escrow ledger entry is kept; this only simulates held funds.
func (g *RPCGateway) EscrowBid(ctx context.Context, wallet Wallet, amount float64) error {
	if !wallet.Connected() || !wallet.CanSign() {
		return fmt.Errorf("gateway: %w", auctionerrors.ErrWalletNotConnected)
	}

	sig, err := g.transfer(ctx, wallet, g.escrow, lamports(amount))
	if err != nil {
		return err
	}

	utils.Info("bid escrow confirmed", map[string]any{
		"bidder":    wallet.Address(),
		"amount":    amount,
		"signature": sig.String(),
	})
	return nil
}

// FinalizeAuction releases escrowed funds to the seller and transfers the
// NFT to the winner. Simplified: no escrow contract exists, so this only
// logs the intended settlement.
func (g *RPCGateway) FinalizeAuction(_ context.Context, auction model.Auction) error {
	utils.Warn("finalize auction: settlement is simplified, no funds moved", map[string]any{
		"auction_id":  auction.AuctionID,
		"nft_id":      auction.NFTID,
		"seller":      auction.Seller,
		"final_price": auction.CurrentPrice,
	})
	return nil
}

// RefundBid returns escrowed funds to the bidder. Simplified: logs only.
func (g *RPCGateway) RefundBid(_ context.Context, bid model.Bid) error {
	utils.Warn("refund bid: settlement is simplified, no funds moved", map[string]any{
		"bid_id": bid.BidID,
		"bidder": bid.Bidder,
		"amount": bid.Amount,
	})
	return nil
}

// GetBalance returns the SOL balance of an address, 0 on any failure
func (g *RPCGateway) GetBalance(ctx context.Context, address string) float64 {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0
	}

	out, err := g.client.GetBalance(ctx, pub, rpc.CommitmentFinalized)
	if err != nil || out == nil {
		utils.Warn("balance query failed", map[string]any{"address": address})
		return 0
	}
	return float64(out.Value) / float64(solana.LAMPORTS_PER_SOL)
}

// transfer builds, signs and broadcasts a system transfer, then waits for
// confirmation.
func (g *RPCGateway) transfer(ctx context.Context, wallet Wallet, dest solana.PublicKey, amount uint64) (solana.Signature, error) {
	recent, err := g.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("gateway: fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(amount, wallet.PublicKey, dest).Build(),
		},
		recent.Value.Blockhash,
		solana.TransactionPayer(wallet.PublicKey),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("gateway: build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(wallet.PublicKey) {
			return &wallet.PrivateKey
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("gateway: sign transaction: %w", err)
	}

	sig, err := g.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("gateway: broadcast transaction: %w", err)
	}

	if err := g.awaitConfirmation(ctx, sig); err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}

// awaitConfirmation polls signature status until the network reports the
// transaction confirmed or the confirm timeout elapses.
func (g *RPCGateway) awaitConfirmation(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, g.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(g.confirmInterval)
	defer ticker.Stop()

	for {
		out, err := g.client.GetSignatureStatuses(ctx, true, sig)
		if err == nil && out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("gateway: transaction %s failed on chain", sig)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("gateway: confirmation wait for %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// lamports converts a SOL amount to the chain's smallest unit
func lamports(amount float64) uint64 {
	return uint64(amount * float64(solana.LAMPORTS_PER_SOL))
}
