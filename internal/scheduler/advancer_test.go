package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commissions/internal/scheduler"
	"commissions/pkg/domain"
	"commissions/pkg/logger"
	"commissions/pkg/storage"
	mockstorage "commissions/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC) //nolint: gochecknoglobals

func newTestAdvancer(t *testing.T, batchSize uint) (*gomock.Controller, *mockstorage.MockStorage, *scheduler.Advancer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := scheduler.NewAdvancer(st, scheduler.AdvancerOptions{
		StalledAfterMonths: 3,
		BatchSize:          batchSize,
		Now:                func() time.Time { return now },
	})

	return ctrl, st, a
}

// expectTxs runs every WithTx callback against the same transactional mock.
func expectTxs(ctrl *gomock.Controller, st *mockstorage.MockStorage, times int) *mockstorage.MockAllStorage {
	tx := mockstorage.NewMockAllStorage(ctrl)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		},
	).Times(times)

	return tx
}

func placements(n int) []domain.Placement {
	out := make([]domain.Placement, 0, n)
	for range n {
		out = append(out, domain.Placement{
			ID:     domain.PlacementID(uuid.New()),
			Status: domain.PlacementStatusPlaced,
		})
	}

	return out
}

func TestAdvancer_Cutoff(t *testing.T) {
	_, _, a := newTestAdvancer(t, 10)

	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), a.Cutoff(now))
	// month ends clamp the way time.AddDate normalizes
	require.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		a.Cutoff(time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)))
}

func TestAdvancer_Run_WalksAllBatches(t *testing.T) {
	ctrl, st, a := newTestAdvancer(t, 2)
	rows := placements(3)
	cutoff := a.Cutoff(now)

	gomock.InOrder(
		st.EXPECT().PlacementsPlacedBefore(gomock.Any(), domain.PlacementStatusPlaced, cutoff, gomock.Nil(), uint(2)).
			Return(rows[:2], nil),
		st.EXPECT().PlacementsPlacedBefore(gomock.Any(), domain.PlacementStatusPlaced, cutoff, &rows[1].ID, uint(2)).
			Return(rows[2:], nil),
	)

	tx := expectTxs(ctrl, st, 3)
	for _, p := range rows {
		tx.EXPECT().AdvancePlacementStatus(gomock.Any(), p.ID,
			domain.PlacementStatusPlaced, domain.PlacementStatusPaymentRequested).Return(true, nil)
		tx.EXPECT().ApprovePendingPaymentRequests(gomock.Any(), p.ID, now).Return(int64(1), nil)
	}

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, cutoff, report.Cutoff)
	require.Equal(t, 3, report.Scanned)
	require.Equal(t, 3, report.Advanced)
	require.EqualValues(t, 3, report.Approved)
	require.Zero(t, report.Failed)
}

func TestAdvancer_Run_RowFailureDoesNotAbortBatch(t *testing.T) {
	ctrl, st, a := newTestAdvancer(t, 10)
	rows := placements(3)

	st.EXPECT().PlacementsPlacedBefore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(rows, nil)

	tx := expectTxs(ctrl, st, 3)
	tx.EXPECT().AdvancePlacementStatus(gomock.Any(), rows[0].ID, gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection reset"))
	tx.EXPECT().AdvancePlacementStatus(gomock.Any(), rows[1].ID, gomock.Any(), gomock.Any()).Return(true, nil)
	tx.EXPECT().ApprovePendingPaymentRequests(gomock.Any(), rows[1].ID, now).Return(int64(0), nil)
	tx.EXPECT().AdvancePlacementStatus(gomock.Any(), rows[2].ID, gomock.Any(), gomock.Any()).Return(true, nil)
	tx.EXPECT().ApprovePendingPaymentRequests(gomock.Any(), rows[2].ID, now).
		Return(int64(0), errors.New("deadlock detected"))

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Scanned)
	require.Equal(t, 1, report.Advanced)
	require.Equal(t, 2, report.Failed)
}

func TestAdvancer_Run_MovedPlacementIsLeftAlone(t *testing.T) {
	ctrl, st, a := newTestAdvancer(t, 10)
	rows := placements(1)

	st.EXPECT().PlacementsPlacedBefore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(rows, nil)

	tx := expectTxs(ctrl, st, 1)
	tx.EXPECT().AdvancePlacementStatus(gomock.Any(), rows[0].ID, gomock.Any(), gomock.Any()).Return(false, nil)

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Scanned)
	require.Zero(t, report.Advanced)
	require.Zero(t, report.Failed)
}

func TestAdvancer_Run_NothingDue(t *testing.T) {
	_, st, a := newTestAdvancer(t, 10)

	st.EXPECT().PlacementsPlacedBefore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(nil, nil)

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, report.Scanned)
}

func TestAdvancer_Run_ListingErrorIsReturned(t *testing.T) {
	_, st, a := newTestAdvancer(t, 10)

	st.EXPECT().PlacementsPlacedBefore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := a.Run(context.Background())
	require.Error(t, err)
}
