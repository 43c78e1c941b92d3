package commission

import (
	"time"

	"commissions/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// RuleName identifies the precedence rule that produced a payout.
type RuleName string

const (
	RuleCampaign       RuleName = "campaign"
	RuleExceptionA     RuleName = "exception_a"
	RuleExceptionB     RuleName = "exception_b"
	RuleDefaultPercent RuleName = "default_percent"
	RuleDefaultFixed   RuleName = "default_fixed"
)

var (
	// ExceptionAKey is the override key of the first negotiated exception category.
	ExceptionAKey = domain.OverrideKey{TypeID: 2, ValueID: 6} //nolint: gochecknoglobals
	// ExceptionBKey is the override key of the second negotiated exception category.
	ExceptionBKey = domain.OverrideKey{TypeID: 2, ValueID: 7} //nolint: gochecknoglobals

	hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals
)

// Input carries every value a rule may read. Callers load them beforehand.
type Input struct {
	Terms     domain.JobCommissionTerms
	Campaign  *domain.Campaign
	Referrer  domain.Referrer
	Candidate *domain.Candidate
	// AnnualSalary is the agreed annual salary of the placement.
	AnnualSalary decimal.Decimal
	// Now is the instant campaign windows are checked against.
	Now time.Time
}

// Rule is one step of the precedence list. Apply reports ok=false when the
// rule does not apply so the next rule is consulted. The returned amount is
// unrounded.
type Rule interface {
	Name() RuleName
	Apply(in Input) (amount decimal.Decimal, ok bool, err error)
}

// DefaultRules returns the precedence list in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		CampaignRule{},
		ExceptionRule{name: RuleExceptionA, key: ExceptionAKey, gated: true},
		ExceptionRule{name: RuleExceptionB, key: ExceptionBKey},
		DefaultPercentRule{},
		DefaultFixedRule{},
	}
}

// percentOf returns amount * percent / 100.
func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// scaleForReferrer applies the collaborator's rank percent. Admins get the
// amount unscaled. The rank is validated by the resolver before any rule runs.
func scaleForReferrer(amount decimal.Decimal, referrer domain.Referrer) decimal.Decimal {
	if referrer.IsAdmin() {
		return amount
	}

	return percentOf(amount, *referrer.RankPercent)
}

// CampaignRule applies an active campaign's flat percent to the annual salary.
type CampaignRule struct{}

func (CampaignRule) Name() RuleName { return RuleCampaign }

func (CampaignRule) Apply(in Input) (decimal.Decimal, bool, error) {
	if in.Campaign == nil || !CampaignActiveAt(*in.Campaign, in.Now) {
		return decimal.Zero, false, nil
	}

	platform := percentOf(in.AnnualSalary, in.Campaign.Percent)

	return scaleForReferrer(platform, in.Referrer), true, nil
}

// CampaignActiveAt reports whether c is active and now falls inside its
// window. Start and end are calendar dates and both are inclusive: the window
// runs from the start of StartDate to the end of EndDate, in UTC.
func CampaignActiveAt(c domain.Campaign, now time.Time) bool {
	if c.Status != domain.CampaignStatusActive {
		return false
	}

	now = now.UTC()
	if c.StartDate != nil && now.Before(startOfDay(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && !now.Before(startOfDay(*c.EndDate).AddDate(0, 0, 1)) {
		return false
	}

	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ExceptionRule applies a keyed override entry using the job's commission kind.
// A gated exception only applies when the entry's predicate, if any, holds for
// the candidate; an ungated one ignores predicates altogether.
type ExceptionRule struct {
	name  RuleName
	key   domain.OverrideKey
	gated bool
}

func (r ExceptionRule) Name() RuleName { return r.name }

func (r ExceptionRule) Apply(in Input) (decimal.Decimal, bool, error) {
	entry, ok, err := r.entry(in)
	if err != nil || !ok {
		return decimal.Zero, false, err
	}

	switch in.Terms.Kind {
	case domain.CommissionKindFixed:
		return scaleForReferrer(entry.Amount, in.Referrer), true, nil
	case domain.CommissionKindPercent:
		return scaleForReferrer(percentOf(in.AnnualSalary, entry.Amount), in.Referrer), true, nil
	default:
		return decimal.Zero, false, errors.Wrapf(ErrNoCommissionTerms, "unknown commission kind %q", in.Terms.Kind)
	}
}

func (r ExceptionRule) entry(in Input) (domain.OverrideEntry, bool, error) {
	for _, e := range sortedEntries(in.Terms.Entries) {
		if e.Key != r.key {
			continue
		}
		if !r.gated || e.Predicate == nil {
			return e, true, nil
		}
		if in.Candidate == nil {
			continue
		}

		ok, err := Evaluate(*e.Predicate, *in.Candidate)
		if err != nil {
			return domain.OverrideEntry{}, false, err
		}
		if ok {
			return e, true, nil
		}
	}

	return domain.OverrideEntry{}, false, nil
}

// DefaultPercentRule applies the candidate-matched entry percent to the annual
// salary for percent jobs.
type DefaultPercentRule struct{}

func (DefaultPercentRule) Name() RuleName { return RuleDefaultPercent }

func (DefaultPercentRule) Apply(in Input) (decimal.Decimal, bool, error) {
	if in.Terms.Kind != domain.CommissionKindPercent {
		return decimal.Zero, false, nil
	}

	entry, ok, err := MatchEntry(regularEntries(in.Terms.Entries), in.Candidate)
	if err != nil {
		return decimal.Zero, false, err
	}
	if !ok {
		return decimal.Zero, false, errors.Wrap(ErrNoCommissionTerms, "percent job without regular override entries")
	}

	return scaleForReferrer(percentOf(in.AnnualSalary, entry.Amount), in.Referrer), true, nil
}

// DefaultFixedRule pays the first regular entry's flat amount for fixed jobs,
// or zero when the job has none.
type DefaultFixedRule struct{}

func (DefaultFixedRule) Name() RuleName { return RuleDefaultFixed }

func (DefaultFixedRule) Apply(in Input) (decimal.Decimal, bool, error) {
	if in.Terms.Kind != domain.CommissionKindFixed {
		return decimal.Zero, false, nil
	}
	entries := regularEntries(in.Terms.Entries)
	if len(entries) == 0 {
		return decimal.Zero, true, nil
	}

	return scaleForReferrer(sortedEntries(entries)[0].Amount, in.Referrer), true, nil
}

// regularEntries drops the exception entries. An exception entry that did not
// apply must not be paid through the default rules.
func regularEntries(entries []domain.OverrideEntry) []domain.OverrideEntry {
	out := make([]domain.OverrideEntry, 0, len(entries))
	for _, e := range entries {
		if e.Key == ExceptionAKey || e.Key == ExceptionBKey {
			continue
		}
		out = append(out, e)
	}

	return out
}
