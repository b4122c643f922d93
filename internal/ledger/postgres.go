package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"

	_ "github.com/lib/pq"
)

// ErrNFTNotFound is returned when no NFT record exists for the given id
var ErrNFTNotFound = errors.New("ledger: nft not found")

// PostgresStore is a RecordStore backed by a hosted Postgres database
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore wraps an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// ConnectDB opens and verifies a Postgres connection with sane pool limits
func ConnectDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Close closes the underlying database handle
func (s *PostgresStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// GetNFT returns the NFT record with the given id
func (s *PostgresStore) GetNFT(ctx context.Context, nftID string) (model.NFT, error) {
	query := `
        SELECT id, title, image_url, owner, price, listed, created_at, updated_at
        FROM nfts WHERE id = $1`

	var nft model.NFT
	err := s.DB.QueryRowContext(ctx, query, nftID).Scan(
		&nft.NFTID,
		&nft.Title,
		&nft.ImageURL,
		&nft.Owner,
		&nft.Price,
		&nft.Listed,
		&nft.CreatedAt,
		&nft.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NFT{}, fmt.Errorf("get nft %s: %w", nftID, ErrNFTNotFound)
	}
	if err != nil {
		return model.NFT{}, fmt.Errorf("failed to get nft %s: %w", nftID, err)
	}
	return nft, nil
}

// UpdateNFTOwnership marks the NFT's owner to the buyer and unlists it
func (s *PostgresStore) UpdateNFTOwnership(ctx context.Context, nftID, newOwner string) error {
	query := `
        UPDATE nfts SET owner = $1, listed = FALSE, updated_at = NOW()
        WHERE id = $2`

	res, err := s.DB.ExecContext(ctx, query, newOwner, nftID)
	if err != nil {
		return fmt.Errorf("failed to update ownership of nft %s: %w", nftID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update ownership of nft %s: %w", nftID, ErrNFTNotFound)
	}
	return nil
}

// InsertTransaction records a completed purchase
func (s *PostgresStore) InsertTransaction(ctx context.Context, tx model.Transaction) error {
	query := `
        INSERT INTO transactions (id, nft_id, buyer, seller, price, status, signature, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.ExecContext(ctx, query,
		tx.TxID,
		tx.NFTID,
		tx.Buyer,
		tx.Seller,
		tx.Price,
		tx.Status,
		tx.Signature,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", tx.TxID, err)
	}
	return nil
}
