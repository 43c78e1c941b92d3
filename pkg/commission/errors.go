package commission

import "github.com/go-faster/errors"

var (
	// ErrRankMissing is returned when a collaborator referrer has no rank assigned.
	ErrRankMissing = errors.New("collaborator has no rank assigned")
	// ErrNoCommissionTerms is returned when a job has no usable commission configuration.
	ErrNoCommissionTerms = errors.New("job has no usable commission terms")
	// ErrInvalidSalary is returned for a negative annual salary.
	ErrInvalidSalary = errors.New("annual salary must not be negative")
	// ErrInvalidPredicate is returned when an override predicate cannot be evaluated.
	ErrInvalidPredicate = errors.New("invalid override predicate")
)
