package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

func createAuction(t *testing.T, env *testEnv, seller string, startingPrice, reservePrice float64) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions", helpers.CreateAuctionRequest{
		NFTID:         "nft1",
		Seller:        seller,
		StartingPrice: startingPrice,
		ReservePrice:  reservePrice,
		EndTime:       time.Now().UTC().Add(time.Hour).UnixMilli(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data(t, resp)["auction_id"].(string)
}

func placeBid(t *testing.T, env *testEnv, auctionID, bidder string, amount float64) (map[string]any, int) {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+auctionID+"/bids", helpers.PlaceBidRequest{
		Bidder: bidder,
		Amount: amount,
	})
	if w.Code != http.StatusCreated {
		return resp, w.Code
	}
	return data(t, resp), w.Code
}

func TestAPI_BidRaisesPriceAndLowerBidRejected(t *testing.T) {
	env := SetupTestEnv(t)
	seller := env.newWalletAddress()
	bidder := env.newWalletAddress()

	auctionID := createAuction(t, env, seller, 1.0, 0)

	bid, code := placeBid(t, env, auctionID, bidder, 1.5)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, 1.5, bid["amount"])

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+auctionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := data(t, resp)
	require.Equal(t, 1.5, auction["current_price"])
	require.Equal(t, 1.0, auction["total_bids"])

	_, code = placeBid(t, env, auctionID, env.newWalletAddress(), 1.2)
	require.Equal(t, http.StatusConflict, code)
}

func TestAPI_ReservePriceSettlement(t *testing.T) {
	t.Run("reserve_not_met_refunds_highest", func(t *testing.T) {
		env := SetupTestEnv(t)
		auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 5.0)

		bid, code := placeBid(t, env, auctionID, env.newWalletAddress(), 3.0)
		require.Equal(t, http.StatusCreated, code)

		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+auctionID+"/end", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "ended", data(t, resp)["status"])

		require.Empty(t, env.gateway.finalized)
		require.Equal(t, []string{bid["bid_id"].(string)}, env.gateway.refunded)
	})

	t.Run("reserve_met_finalizes", func(t *testing.T) {
		env := SetupTestEnv(t)
		auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 5.0)

		_, code := placeBid(t, env, auctionID, env.newWalletAddress(), 6.0)
		require.Equal(t, http.StatusCreated, code)

		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+auctionID+"/end", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "ended", data(t, resp)["status"])

		require.Empty(t, env.gateway.refunded)
		require.Equal(t, []string{auctionID}, env.gateway.finalized)

		// terminal: further bids rejected
		_, code = placeBid(t, env, auctionID, env.newWalletAddress(), 10.0)
		require.Equal(t, http.StatusConflict, code)
	})
}

func TestAPI_CancelBidRestoresPreviousHighest(t *testing.T) {
	env := SetupTestEnv(t)
	first := env.newWalletAddress()
	second := env.newWalletAddress()

	auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 0)

	lowBid, code := placeBid(t, env, auctionID, first, 2.0)
	require.Equal(t, http.StatusCreated, code)
	highBid, code := placeBid(t, env, auctionID, second, 3.0)
	require.Equal(t, http.StatusCreated, code)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodDelete, "/bids/"+highBid["bid_id"].(string)+"?bidder="+second, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", data(t, resp)["status"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+auctionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := data(t, resp)
	require.Equal(t, 2.0, auction["current_price"])
	require.Equal(t, lowBid["bid_id"], auction["highest_bid_id"])
}

func TestAPI_UnknownBidderCannotPay(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 0)

	// a parseable address that is not in the keyring resolves to a
	// watch-only wallet, so escrow fails at the gateway
	unknown := "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	_, code := placeBid(t, env, auctionID, unknown, 2.0)
	require.Equal(t, http.StatusBadGateway, code)

	// garbage address resolves to a disconnected wallet
	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+auctionID+"/bids", helpers.PlaceBidRequest{
		Bidder: "definitely-not-base58!",
		Amount: 2.0,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "wallet not connected", resp["message"])

	// auction state unchanged either way
	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+auctionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, data(t, resp)["current_price"])
	require.Equal(t, 0.0, data(t, resp)["total_bids"])
}

func TestAPI_PaymentFailureLeavesAuctionUntouched(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 0)

	env.gateway.failEscrow = true
	_, code := placeBid(t, env, auctionID, env.newWalletAddress(), 2.0)
	require.Equal(t, http.StatusBadGateway, code)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+auctionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, data(t, resp)["current_price"])
	require.Equal(t, 0.0, data(t, resp)["total_bids"])
}

func TestAPI_ListActiveAuctions(t *testing.T) {
	env := SetupTestEnv(t)
	seller := env.newWalletAddress()

	liveID := createAuction(t, env, seller, 1.0, 0)
	endedID := createAuction(t, env, seller, 1.0, 0)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+endedID+"/end", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := resp["data"].([]any)
	require.Len(t, list, 1)
	require.Equal(t, liveID, list[0].(map[string]any)["auction_id"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)
}

func TestAPI_BidHistory(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := createAuction(t, env, env.newWalletAddress(), 1.0, 0)

	first := env.newWalletAddress()
	second := env.newWalletAddress()
	_, code := placeBid(t, env, auctionID, first, 2.0)
	require.Equal(t, http.StatusCreated, code)
	_, code = placeBid(t, env, auctionID, second, 3.0)
	require.Equal(t, http.StatusCreated, code)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+auctionID+"/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)

	bids := resp["data"].([]any)
	require.Len(t, bids, 2)

	// acceptance order, and the first bid is marked outbid
	firstBid := bids[0].(map[string]any)
	secondBid := bids[1].(map[string]any)
	require.Equal(t, first, firstBid["bidder"])
	require.Equal(t, "outbid", firstBid["status"])
	require.Equal(t, second, secondBid["bidder"])
	require.Equal(t, "active", secondBid["status"])
}

func TestAPI_WalletBalance(t *testing.T) {
	env := SetupTestEnv(t)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/wallets/anyaddress/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 10.0, data(t, resp)["balance"])
}
