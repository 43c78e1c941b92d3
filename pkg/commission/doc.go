// Package commission resolves how much a referrer earns when a candidate is
// placed. Resolution is a pure function of the job's commission terms, the
// job's campaign, the referrer and the candidate: callers load those values
// beforehand and the resolver performs no I/O.
//
// Precedence is an ordered list of rules evaluated top to bottom, first match
// wins:
//
//  1. campaign: active, in-window campaign percent of the annual salary
//  2. exception_a: override entry keyed (2,6), gated by its predicate
//  3. exception_b: override entry keyed (2,7), predicates ignored
//  4. default_percent: predicate-matched entry percent of the annual salary
//  5. default_fixed: first entry flat amount, zero when there are no entries
//
// Every rule scales its amount by the collaborator's rank percent; internal
// admins receive the unscaled amount. The payout is rounded once, half-up, to
// the configured number of decimal places.
package commission
