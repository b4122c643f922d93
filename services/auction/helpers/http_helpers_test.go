package helpers

import (
	"testing"
	"time"

	model "github.com/Jonathanthedeveloper/solana-artisan-plaza-main/internal/models"

	"github.com/stretchr/testify/require"
)

func TestTimeRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	base := model.Auction{Status: model.AuctionStatusActive, StartTime: now.Add(-time.Hour)}

	tests := []struct {
		name    string
		endTime time.Time
		status  model.AuctionStatus
		want    string
	}{
		{name: "days_hours_minutes", endTime: now.Add(49*time.Hour + 30*time.Minute), status: model.AuctionStatusActive, want: "2d 1h 30m"},
		{name: "hours_minutes", endTime: now.Add(3*time.Hour + 5*time.Minute), status: model.AuctionStatusActive, want: "3h 5m"},
		{name: "minutes_only", endTime: now.Add(12 * time.Minute), status: model.AuctionStatusActive, want: "12m"},
		{name: "past_end_time", endTime: now.Add(-time.Minute), status: model.AuctionStatusActive, want: "ended"},
		{name: "ended_status", endTime: now.Add(time.Hour), status: model.AuctionStatusEnded, want: "ended"},
		{name: "cancelled_status", endTime: now.Add(time.Hour), status: model.AuctionStatusCancelled, want: "ended"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := base
			a.EndTime = tc.endTime
			a.Status = tc.status
			require.Equal(t, tc.want, TimeRemaining(a, now))
		})
	}
}

func TestEpochMillis(t *testing.T) {
	t.Parallel()

	require.True(t, EpochMillis(0).IsZero())

	ms := int64(1717243200000) // 2024-06-01T12:00:00Z
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), EpochMillis(ms))
}
