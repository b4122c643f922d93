package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	bidding "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/biddingService"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/ledger"
	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/repository"
	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/server"
	solanasvc "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/solana"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
)

// fakeGateway is an in-process Gateway: transfers always confirm unless
// failEscrow is set. It records refunds so settlement paths are observable.
type fakeGateway struct {
	mu         sync.Mutex
	failEscrow bool
	escrowed   []float64
	refunded   []string
	finalized  []string
}

func (g *fakeGateway) Purchase(_ context.Context, wallet solanasvc.Wallet, _ string, _ float64) (string, error) {
	if !wallet.CanSign() {
		return "", errors.New("gateway: wallet not connected")
	}
	return "fake-signature", nil
}

func (g *fakeGateway) BuyNFT(ctx context.Context, wallet solanasvc.Wallet, nft model.NFT, price float64) (string, error) {
	return g.Purchase(ctx, wallet, nft.Owner, price)
}

func (g *fakeGateway) EscrowBid(_ context.Context, wallet solanasvc.Wallet, amount float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !wallet.CanSign() {
		return errors.New("gateway: wallet cannot sign escrow transfer")
	}
	if g.failEscrow {
		return errors.New("gateway: escrow transfer failed")
	}
	g.escrowed = append(g.escrowed, amount)
	return nil
}

func (g *fakeGateway) FinalizeAuction(_ context.Context, auction model.Auction) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalized = append(g.finalized, auction.AuctionID)
	return nil
}

func (g *fakeGateway) RefundBid(_ context.Context, bid model.Bid) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refunded = append(g.refunded, bid.BidID)
	return nil
}

func (g *fakeGateway) GetBalance(_ context.Context, _ string) float64 {
	return 10.0
}

// testEnv bundles the wired application under test
type testEnv struct {
	router  *gin.Engine
	gateway *fakeGateway
	keyring *solanasvc.Keyring
	repo    *repository.MemoryRepo
}

// newWalletAddress registers a fresh signing keypair and returns its address
func (e *testEnv) newWalletAddress() string {
	w := solana.NewWallet()
	e.keyring.Add(w.PrivateKey)
	return w.PublicKey().String()
}

// SetupTestEnv initializes the router with in-memory stores and a fake
// payment gateway for integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	gateway := &fakeGateway{}
	keyring := solanasvc.NewKeyring()
	service := bidding.NewBiddingService(repo, gateway, ledger.NewMemoryLedger())
	router := server.SetupRouter(service, keyring)

	return &testEnv{router: router, gateway: gateway, keyring: keyring, repo: repo}
}

// ExecuteRequestAndParse executes an HTTP request against the router and
// parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data extracts the data object of a JSON envelope
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
