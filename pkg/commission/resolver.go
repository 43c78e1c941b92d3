package commission

import (
	"commissions/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Options configure the resolver.
type Options struct {
	// RoundingPlaces is the number of decimal places the final payout is rounded
	// to (half-up). 0 rounds to whole currency units.
	RoundingPlaces int32
}

// Result is the outcome of a resolution.
type Result struct {
	// Amount is the rounded payout owed to the referrer.
	Amount decimal.Decimal
	// Rule is the precedence rule that produced Amount.
	Rule RuleName
}

// Resolver evaluates the commission precedence rules. It is safe for
// concurrent use.
type Resolver struct {
	rules   []Rule
	options Options
}

// New creates a Resolver using DefaultRules.
func New(options Options) *Resolver {
	return NewWithRules(options, DefaultRules()...)
}

// NewWithRules creates a Resolver evaluating the given rules in order.
func NewWithRules(options Options, rules ...Rule) *Resolver {
	return &Resolver{
		rules:   rules,
		options: options,
	}
}

// Resolve computes the payout for in. Configuration problems (missing rank,
// unusable terms, bad predicates, negative salary) are returned as
// serrors.ErrMisconfigured errors that also match the package sentinels.
func (r *Resolver) Resolve(in Input) (Result, error) {
	if in.AnnualSalary.IsNegative() {
		return Result{}, misconfigured(ErrInvalidSalary)
	}
	if !in.Referrer.IsAdmin() && in.Referrer.RankPercent == nil {
		return Result{}, misconfigured(errors.Wrapf(ErrRankMissing, "collaborator %s", in.Referrer.CollaboratorID))
	}

	for _, rule := range r.rules {
		amount, ok, err := rule.Apply(in)
		if err != nil {
			return Result{}, misconfigured(errors.Wrapf(err, "rule %s", rule.Name()))
		}
		if ok {
			return Result{
				Amount: amount.Round(r.options.RoundingPlaces),
				Rule:   rule.Name(),
			}, nil
		}
	}

	return Result{}, misconfigured(errors.Wrapf(ErrNoCommissionTerms, "unknown commission kind %q", in.Terms.Kind))
}

func misconfigured(err error) error {
	return serrors.Wrap(serrors.ErrMisconfigured, err, "could not resolve commission")
}
