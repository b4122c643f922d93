package main

import (
	"context"
	"fmt"
	"os"
	"time"

	bidding "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/biddingService"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/config"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/ledger"
	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/repository"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/server"
	solanasvc "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/solana"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	records := setupLedger(cfg)

	keyring, err := solanasvc.LoadKeyring(cfg.KeyringFile)
	if err != nil {
		utils.Fatal("failed to load keyring", map[string]any{"error": err.Error()})
	}

	gateway, err := solanasvc.NewRPCGateway(cfg.SolanaRPCURL, cfg.EscrowAddress, records, cfg.ConfirmTimeout, cfg.ConfirmInterval)
	if err != nil {
		utils.Fatal("failed to create payment gateway", map[string]any{"error": err.Error()})
	}

	repo := repository.NewMemoryRepo()
	biddingSvc := bidding.NewBiddingService(repo, gateway, records)

	startExpirySweeper(biddingSvc, cfg.SweepInterval)

	router := server.SetupRouter(biddingSvc, keyring)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupLedger connects to Postgres when a DSN is configured, otherwise the
// NFT/transaction records stay in process memory.
func setupLedger(cfg *config.Config) ledger.RecordStore {
	if cfg.DatabaseURL == "" {
		utils.Warn("no DATABASE_URL configured, keeping records in memory", nil)
		mem := ledger.NewMemoryLedger()
		prepopulateNFTs(mem)
		return mem
	}

	db, err := ledger.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	return ledger.NewPostgresStore(db)
}

// startExpirySweeper periodically closes active auctions past their end time
func startExpirySweeper(svc *bidding.BiddingService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			if closed := svc.CloseExpiredAuctions(context.Background()); closed > 0 {
				utils.Info("closed expired auctions", map[string]any{"count": closed})
			}
		}
	}()
}

// prepopulateNFTs seeds sample NFT records for the in-memory ledger
func prepopulateNFTs(mem *ledger.MemoryLedger) {
	now := time.Now().UTC()
	nfts := []model.NFT{
		{NFTID: "nft1", Title: "Artisan Plaza #1", Owner: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", Price: 1.5, Listed: true, CreatedAt: now, UpdatedAt: now},
		{NFTID: "nft2", Title: "Artisan Plaza #2", Owner: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", Price: 2.0, Listed: true, CreatedAt: now, UpdatedAt: now},
		{NFTID: "nft3", Title: "Artisan Plaza #3", Owner: "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T", Price: 0.8, Listed: false, CreatedAt: now, UpdatedAt: now},
	}

	for _, nft := range nfts {
		mem.AddNFT(nft)
	}
}
