package commission_test

import (
	"testing"

	"commissions/pkg/commission"
	"commissions/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)

	return &d
}

func intPtr(i int) *int { return &i }

func TestEvaluate(t *testing.T) {
	candidate := domain.Candidate{ExperienceYears: decPtr("3"), JLPTLevel: intPtr(2)}

	cases := []struct {
		name string
		pred domain.Predicate
		want bool
		err  bool
	}{
		{"gte true", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorGTE, Value: dec("3")}, true, false},
		{"gte false", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorGTE, Value: dec("3.5")}, false, false},
		{"lte", domain.Predicate{Attribute: domain.CandidateAttributeJLPTLevel, Operator: domain.OperatorLTE, Value: dec("2")}, true, false},
		{"gt", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorGT, Value: dec("3")}, false, false},
		{"lt", domain.Predicate{Attribute: domain.CandidateAttributeJLPTLevel, Operator: domain.OperatorLT, Value: dec("3")}, true, false},
		{"eq", domain.Predicate{Attribute: domain.CandidateAttributeJLPTLevel, Operator: domain.OperatorEQ, Value: dec("2")}, true, false},
		{"between inclusive lower", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorBetween, Value: dec("3"), Upper: decPtr("5")}, true, false},
		{"between outside", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorBetween, Value: dec("4"), Upper: decPtr("5")}, false, false},
		{"between without upper", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorBetween, Value: dec("1")}, false, true},
		{"unknown operator", domain.Predicate{Attribute: domain.CandidateAttributeExperienceYears, Operator: "~", Value: dec("1")}, false, true},
		{"unknown attribute", domain.Predicate{Attribute: "age", Operator: domain.OperatorEQ, Value: dec("1")}, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := commission.Evaluate(tc.pred, candidate)
			if tc.err {
				require.ErrorIs(t, err, commission.ErrInvalidPredicate)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluate_MissingAttributeNeverMatches(t *testing.T) {
	ok, err := commission.Evaluate(domain.Predicate{
		Attribute: domain.CandidateAttributeJLPTLevel,
		Operator:  domain.OperatorLTE,
		Value:     dec("5"),
	}, domain.Candidate{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchEntry(t *testing.T) {
	junior := domain.OverrideEntry{Position: 0, Amount: dec("15")}
	senior := domain.OverrideEntry{Position: 1, Amount: dec("25"), Predicate: &domain.Predicate{
		Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorGTE, Value: dec("5"),
	}}
	mid := domain.OverrideEntry{Position: 2, Amount: dec("20"), Predicate: &domain.Predicate{
		Attribute: domain.CandidateAttributeExperienceYears, Operator: domain.OperatorBetween, Value: dec("2"), Upper: decPtr("4"),
	}}
	entries := []domain.OverrideEntry{mid, senior, junior}

	t.Run("empty", func(t *testing.T) {
		_, ok, err := commission.MatchEntry(nil, nil)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("no candidate falls back to first by position", func(t *testing.T) {
		e, ok, err := commission.MatchEntry(entries, nil)
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, e.Amount.Equal(dec("15")))
	})

	t.Run("first satisfied predicate wins", func(t *testing.T) {
		e, _, err := commission.MatchEntry(entries, &domain.Candidate{ExperienceYears: decPtr("7")})
		require.NoError(t, err)
		require.True(t, e.Amount.Equal(dec("25")))

		e, _, err = commission.MatchEntry(entries, &domain.Candidate{ExperienceYears: decPtr("3")})
		require.NoError(t, err)
		require.True(t, e.Amount.Equal(dec("20")))
	})

	t.Run("nothing satisfied falls back to first", func(t *testing.T) {
		e, _, err := commission.MatchEntry(entries, &domain.Candidate{ExperienceYears: decPtr("1")})
		require.NoError(t, err)
		require.True(t, e.Amount.Equal(dec("15")))
	})

	t.Run("bad predicate surfaces", func(t *testing.T) {
		bad := []domain.OverrideEntry{{Amount: dec("1"), Predicate: &domain.Predicate{Attribute: "height"}}}
		_, _, err := commission.MatchEntry(bad, &domain.Candidate{})
		require.ErrorIs(t, err, commission.ErrInvalidPredicate)
	})
}
