package lifecycle_test

import (
	"context"
	"testing"

	"commissions/internal/lifecycle"
	"commissions/pkg/commission"
	"commissions/pkg/domain"
	"commissions/pkg/serrors"
	"commissions/pkg/storage"
	mockstorage "commissions/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRequest(status domain.PaymentRequestStatus) domain.PaymentRequest {
	return domain.PaymentRequest{
		ID:          domain.PaymentRequestID(uuid.New()),
		PlacementID: domain.PlacementID(uuid.New()),
		ReferrerID:  domain.CollaboratorID(uuid.New()),
		Amount:      decimal.NewFromInt(1_000_000),
		Status:      status,
	}
}

func TestLifecycle_Approve(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusPending)

	st.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context,
			_ domain.PaymentRequestID,
			transition storage.PaymentRequestTransition) (*domain.PaymentRequest, error) {
			require.Equal(t, domain.PaymentRequestStatusPending, transition.From)
			require.Equal(t, domain.PaymentRequestStatusApproved, transition.To)
			require.Equal(t, now, transition.At)
			approved := req
			approved.Status = transition.To
			approved.ApprovedAt = transition.At

			return &approved, nil
		},
	)

	res, err := l.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRequestStatusApproved, res.Status)
	require.Equal(t, now, res.ApprovedAt)
}

func TestLifecycle_Approve_LostRaceReturnsCurrent(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	// the scheduler approved the request first
	req := newRequest(domain.PaymentRequestStatusApproved)

	st.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil, nil)
	st.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)

	res, err := l.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	require.Equal(t, req, *res)
}

func TestLifecycle_IllegalTransitionsConflict(t *testing.T) {
	cases := []struct {
		name    string
		current domain.PaymentRequestStatus
		call    func(l lifecycle.Lifecycle, id domain.PaymentRequestID) error
	}{
		{
			name:    "approve paid",
			current: domain.PaymentRequestStatusPaid,
			call: func(l lifecycle.Lifecycle, id domain.PaymentRequestID) error {
				_, err := l.Approve(context.Background(), id)

				return err
			},
		},
		{
			name:    "approve rejected",
			current: domain.PaymentRequestStatusRejected,
			call: func(l lifecycle.Lifecycle, id domain.PaymentRequestID) error {
				_, err := l.Approve(context.Background(), id)

				return err
			},
		},
		{
			name:    "reject paid",
			current: domain.PaymentRequestStatusPaid,
			call: func(l lifecycle.Lifecycle, id domain.PaymentRequestID) error {
				_, err := l.Reject(context.Background(), id, "too late")

				return err
			},
		},
		{
			name:    "reject approved",
			current: domain.PaymentRequestStatusApproved,
			call: func(l lifecycle.Lifecycle, id domain.PaymentRequestID) error {
				_, err := l.Reject(context.Background(), id, "changed mind")

				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, st, l := newTestLifecycle(t)
			req := newRequest(tc.current)

			st.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil, nil)
			st.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)

			require.ErrorIs(t, tc.call(l, req.ID), serrors.ErrConflict)
		})
	}
}

func TestLifecycle_Approve_NotFound(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	id := domain.PaymentRequestID(uuid.New())

	st.EXPECT().TransitionPaymentRequest(gomock.Any(), id, gomock.Any()).Return(nil, nil)
	st.EXPECT().PaymentRequestByID(gomock.Any(), id).Return(nil, nil)

	_, err := l.Approve(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLifecycle_Reject(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusPending)

	st.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context,
			_ domain.PaymentRequestID,
			transition storage.PaymentRequestTransition) (*domain.PaymentRequest, error) {
			require.Equal(t, domain.PaymentRequestStatusRejected, transition.To)
			require.Equal(t, "duplicate referral", transition.Reason)
			rejected := req
			rejected.Status = transition.To
			rejected.RejectionReason = transition.Reason
			rejected.RejectedAt = transition.At

			return &rejected, nil
		},
	)

	res, err := l.Reject(context.Background(), req.ID, "  duplicate referral ")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRequestStatusRejected, res.Status)
	require.Equal(t, "duplicate referral", res.RejectionReason)
}

func TestLifecycle_Reject_Repeated(t *testing.T) {
	cases := []struct {
		name    string
		reason  string
		wantErr error
	}{
		{name: "same reason returns the row", reason: "duplicate referral"},
		{name: "another reason conflicts", reason: "candidate withdrew", wantErr: serrors.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, st, l := newTestLifecycle(t)
			req := newRequest(domain.PaymentRequestStatusRejected)
			req.RejectionReason = "duplicate referral"

			st.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil, nil)
			st.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)

			res, err := l.Reject(context.Background(), req.ID, tc.reason)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, res)

				return
			}
			require.NoError(t, err)
			require.Equal(t, "duplicate referral", res.RejectionReason)
		})
	}
}

func TestLifecycle_Reject_RequiresReason(t *testing.T) {
	_, _, l := newTestLifecycle(t)

	_, err := l.Reject(context.Background(), domain.PaymentRequestID(uuid.New()), "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLifecycle_MarkPaid_AdvancesPlacement(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusApproved)
	placement := domain.Placement{ID: req.PlacementID, Status: domain.PlacementStatusPaymentRequested}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context,
				_ domain.PaymentRequestID,
				transition storage.PaymentRequestTransition) (*domain.PaymentRequest, error) {
				require.Equal(t, domain.PaymentRequestStatusApproved, transition.From)
				require.Equal(t, domain.PaymentRequestStatusPaid, transition.To)
				paid := req
				paid.Status = transition.To
				paid.PaidAt = transition.At

				return &paid, nil
			},
		)
		tx.EXPECT().PlacementByID(gomock.Any(), req.PlacementID).Return(&placement, nil)
		tx.EXPECT().UpdatePlacement(gomock.Any(), req.PlacementID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PlacementID, updates storage.PlacementUpdates) (*domain.Placement, error) {
				require.NotNil(t, updates.Status)
				require.Equal(t, domain.PlacementStatusPaid, *updates.Status)
				paid := placement
				paid.Status = *updates.Status

				return &paid, nil
			},
		)
	})

	res, err := l.MarkPaid(context.Background(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRequestStatusPaid, res.Status)
	require.Equal(t, now, res.PaidAt)
}

func TestLifecycle_MarkPaid_FromPendingConflicts(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusPending)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil, nil)
		tx.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)
	})

	_, err := l.MarkPaid(context.Background(), req.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestLifecycle_MarkPaid_AlreadyPaidSkipsPlacement(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusPaid)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionPaymentRequest(gomock.Any(), req.ID, gomock.Any()).Return(nil, nil)
		tx.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)
	})

	res, err := l.MarkPaid(context.Background(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRequestStatusPaid, res.Status)
}

func TestLifecycle_PaymentRequest(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	req := newRequest(domain.PaymentRequestStatusPending)

	st.EXPECT().PaymentRequestByID(gomock.Any(), req.ID).Return(&req, nil)
	res, err := l.PaymentRequest(context.Background(), req.ID)
	require.NoError(t, err)
	require.Equal(t, req.ID, res.ID)

	missing := domain.PaymentRequestID(uuid.New())
	st.EXPECT().PaymentRequestByID(gomock.Any(), missing).Return(nil, nil)
	_, err = l.PaymentRequest(context.Background(), missing)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLifecycle_Quote(t *testing.T) {
	t.Run("collaborator", func(t *testing.T) {
		_, st, l := newTestLifecycle(t)
		f := newFixture()
		f.placement.Status = domain.PlacementStatusPlaced

		st.EXPECT().PlacementByID(gomock.Any(), f.placement.ID).Return(&f.placement, nil)
		f.expectResolveInputs(st)

		q, err := l.Quote(context.Background(), f.placement.ID)
		require.NoError(t, err)
		require.False(t, q.Admin)
		require.Equal(t, "1000000", q.Amount.String())
		require.Equal(t, commission.RuleDefaultPercent, q.Rule)
	})

	t.Run("admin is not rank scaled", func(t *testing.T) {
		_, st, l := newTestLifecycle(t)
		f := newFixture()
		f.placement.ReferrerID = nil
		f.terms.Kind = domain.CommissionKindFixed
		f.terms.Entries[0].Amount = decimal.NewFromInt(300_000)

		st.EXPECT().PlacementByID(gomock.Any(), f.placement.ID).Return(&f.placement, nil)
		st.EXPECT().JobCommissionTerms(gomock.Any(), f.placement.JobID).Return(&f.terms, nil)
		st.EXPECT().CampaignForJob(gomock.Any(), f.placement.JobID, gomock.Any()).Return(nil, nil)
		st.EXPECT().CandidateByID(gomock.Any(), f.placement.CandidateID).Return(nil, nil)

		q, err := l.Quote(context.Background(), f.placement.ID)
		require.NoError(t, err)
		require.True(t, q.Admin)
		require.Equal(t, "300000", q.Amount.String())
		require.Equal(t, commission.RuleDefaultFixed, q.Rule)
	})

	t.Run("not found", func(t *testing.T) {
		_, st, l := newTestLifecycle(t)
		id := domain.PlacementID(uuid.New())

		st.EXPECT().PlacementByID(gomock.Any(), id).Return(nil, nil)

		_, err := l.Quote(context.Background(), id)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
