package commission

import (
	"cmp"
	"slices"

	"commissions/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Evaluate reports whether predicate p holds for candidate c. A candidate that
// lacks the compared attribute never satisfies the predicate.
func Evaluate(p domain.Predicate, c domain.Candidate) (bool, error) {
	var value decimal.Decimal
	switch p.Attribute {
	case domain.CandidateAttributeExperienceYears:
		if c.ExperienceYears == nil {
			return false, nil
		}
		value = *c.ExperienceYears
	case domain.CandidateAttributeJLPTLevel:
		if c.JLPTLevel == nil {
			return false, nil
		}
		value = decimal.NewFromInt(int64(*c.JLPTLevel))
	default:
		return false, errors.Wrapf(ErrInvalidPredicate, "unknown attribute %q", p.Attribute)
	}

	switch p.Operator {
	case domain.OperatorGTE:
		return value.GreaterThanOrEqual(p.Value), nil
	case domain.OperatorLTE:
		return value.LessThanOrEqual(p.Value), nil
	case domain.OperatorGT:
		return value.GreaterThan(p.Value), nil
	case domain.OperatorLT:
		return value.LessThan(p.Value), nil
	case domain.OperatorEQ:
		return value.Equal(p.Value), nil
	case domain.OperatorBetween:
		if p.Upper == nil {
			return false, errors.Wrap(ErrInvalidPredicate, "between without upper bound")
		}

		return value.GreaterThanOrEqual(p.Value) && value.LessThanOrEqual(*p.Upper), nil
	default:
		return false, errors.Wrapf(ErrInvalidPredicate, "unknown operator %q", p.Operator)
	}
}

// MatchEntry picks the override entry for a candidate: the first entry, in
// position order, that carries a predicate satisfied by the candidate. Entries
// without a predicate never match on their own. When nothing matches, or no
// candidate is available, the first entry is returned. ok is false only when
// entries is empty.
func MatchEntry(entries []domain.OverrideEntry, candidate *domain.Candidate) (domain.OverrideEntry, bool, error) {
	if len(entries) == 0 {
		return domain.OverrideEntry{}, false, nil
	}

	ordered := sortedEntries(entries)
	if candidate == nil {
		return ordered[0], true, nil
	}

	for _, e := range ordered {
		if e.Predicate == nil {
			continue
		}

		ok, err := Evaluate(*e.Predicate, *candidate)
		if err != nil {
			return domain.OverrideEntry{}, false, err
		}
		if ok {
			return e, true, nil
		}
	}

	return ordered[0], true, nil
}

func sortedEntries(entries []domain.OverrideEntry) []domain.OverrideEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b domain.OverrideEntry) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return out
}
