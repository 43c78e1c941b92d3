package v1handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"commissions/internal/lifecycle"
	"commissions/pkg/domain"
	"commissions/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = time.DateOnly
	// maxBodyBytes bounds request bodies; every v1 body is a small object.
	maxBodyBytes = 64 << 10
)

func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id %q", r.PathValue("id"))
	}

	return id, nil
}

func decodeObject(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	d := jx.Decode(io.LimitReader(r.Body, maxBodyBytes), 512)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		return field(d, string(key))
	})
	if err != nil {
		var semErr *serrors.Error
		if errors.As(err, &semErr) {
			return semErr
		}

		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode body"), "malformed request body")
	}

	return nil
}

func decodeString(d *jx.Decoder) (string, error) {
	s, err := d.Str()
	if err != nil {
		return "", errors.Wrap(err, "decode string")
	}

	return s, nil
}

// decodeDecimal accepts both JSON numbers and numeric strings.
func decodeDecimal(d *jx.Decoder, field string) (decimal.Decimal, error) {
	var raw string
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, errors.Wrap(err, "decode number")
		}
		raw = n.String()
	case jx.String:
		s, err := decodeString(d)
		if err != nil {
			return decimal.Zero, err
		}
		raw = s
	default:
		return decimal.Zero, serrors.With(serrors.ErrBadRequest, "%s must be a number", field)
	}

	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a number", field)
	}

	return v, nil
}

func decodeDate(d *jx.Decoder, field string) (time.Time, error) {
	s, err := decodeString(d)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a date formatted as YYYY-MM-DD", field)
	}

	return t, nil
}

// decodePlacementChange reads a placement edit. Absent and null fields are
// left unchanged.
func decodePlacementChange(r *http.Request, id domain.PlacementID) (lifecycle.PlacementChange, error) {
	change := lifecycle.PlacementChange{ID: id}
	err := decodeObject(r, func(d *jx.Decoder, key string) error {
		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}

		switch key {
		case "status":
			name, err := decodeString(d)
			if err != nil {
				return err
			}
			status, ok := domain.ParsePlacementStatus(strings.ToUpper(name))
			if !ok {
				return serrors.With(serrors.ErrBadRequest, "unknown placement status %q", name)
			}
			change.Status = &status
		case "salary":
			salary, err := decodeDecimal(d, "salary")
			if err != nil {
				return err
			}
			change.Salary = &salary
		case "referrerId":
			s, err := decodeString(d)
			if err != nil {
				return err
			}
			referrer, err := uuid.Parse(s)
			if err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "invalid referrerId %q", s)
			}
			referrerID := domain.CollaboratorID(referrer)
			change.ReferrerID = &referrerID
		case "placedAt":
			t, err := decodeDate(d, "placedAt")
			if err != nil {
				return err
			}
			change.PlacedAt = &t
		case "expectedPaymentAt":
			t, err := decodeDate(d, "expectedPaymentAt")
			if err != nil {
				return err
			}
			change.ExpectedPaymentAt = &t
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})

	return change, err
}

func decodeRejection(r *http.Request) (string, error) {
	var reason string
	err := decodeObject(r, func(d *jx.Decoder, key string) error {
		if key != "reason" {
			return d.Skip() //nolint: wrapcheck
		}
		if d.Next() != jx.String {
			return serrors.With(serrors.ErrBadRequest, "reason must be a string")
		}

		var err error
		reason, err = decodeString(d)

		return err
	})

	return reason, err
}

func encodeTime(e *jx.Encoder, field string, t time.Time) {
	e.FieldStart(field)
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}

func encodeDate(e *jx.Encoder, field string, t *time.Time) {
	e.FieldStart(field)
	if t == nil {
		e.Null()

		return
	}
	e.Str(t.Format(dateLayout))
}

func encodePlacement(e *jx.Encoder, p *domain.Placement) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID.String())
	e.FieldStart("jobId")
	e.Str(p.JobID.String())
	e.FieldStart("candidateId")
	e.Str(uuid.UUID(p.CandidateID).String())
	e.FieldStart("referrerId")
	if p.ReferrerID != nil {
		e.Str(p.ReferrerID.String())
	} else {
		e.Null()
	}
	e.FieldStart("status")
	e.Str(p.Status.String())
	e.FieldStart("salary")
	if p.Salary != nil {
		e.Str(p.Salary.String())
	} else {
		e.Null()
	}
	encodeDate(e, "placedAt", p.PlacedAt)
	encodeDate(e, "expectedPaymentAt", p.ExpectedPaymentAt)
	encodeTime(e, "createdAt", p.CreatedAt)
	encodeTime(e, "updatedAt", p.UpdatedAt)
	e.ObjEnd()
}

func encodePaymentRequest(e *jx.Encoder, pr *domain.PaymentRequest) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(pr.ID.String())
	e.FieldStart("placementId")
	e.Str(pr.PlacementID.String())
	e.FieldStart("referrerId")
	e.Str(pr.ReferrerID.String())
	e.FieldStart("amount")
	e.Str(pr.Amount.String())
	e.FieldStart("status")
	e.Str(pr.Status.String())
	if pr.RejectionReason != "" {
		e.FieldStart("rejectionReason")
		e.Str(pr.RejectionReason)
	}
	encodeTime(e, "approvedAt", pr.ApprovedAt)
	encodeTime(e, "rejectedAt", pr.RejectedAt)
	encodeTime(e, "paidAt", pr.PaidAt)
	encodeTime(e, "createdAt", pr.CreatedAt)
	encodeTime(e, "updatedAt", pr.UpdatedAt)
	e.ObjEnd()
}

func encodeOutcome(e *jx.Encoder, o lifecycle.Outcome) {
	e.ObjStart()
	e.FieldStart("action")
	e.Str(string(o.Action))
	if o.Rule != "" {
		e.FieldStart("rule")
		e.Str(string(o.Rule))
	}
	if o.Reason != "" {
		e.FieldStart("reason")
		e.Str(o.Reason)
	}
	if o.Err != nil {
		e.FieldStart("error")
		if kind := serrors.KindOf(o.Err); kind != nil {
			e.Str(kind.Error())
		} else {
			e.Str(serrors.ErrInternal.Error())
		}
	}
	if o.PaymentRequest != nil {
		e.FieldStart("paymentRequest")
		encodePaymentRequest(e, o.PaymentRequest)
	}
	e.ObjEnd()
}

func encodeQuote(e *jx.Encoder, q *lifecycle.Quote) {
	e.ObjStart()
	e.FieldStart("placementId")
	e.Str(q.PlacementID.String())
	e.FieldStart("amount")
	e.Str(q.Amount.String())
	e.FieldStart("rule")
	e.Str(string(q.Rule))
	e.FieldStart("admin")
	e.Bool(q.Admin)
	e.ObjEnd()
}
