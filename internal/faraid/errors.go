package faraid

import "errors"

var (
	// ErrInvalidEstateValue is returned when the estate is non-numeric or not positive.
	ErrInvalidEstateValue = errors.New("estate value must be a positive number")

	// ErrInvalidWivesCount is returned when a wife is present and the count is outside 1..4.
	ErrInvalidWivesCount = errors.New("wives count must be between 1 and 4")

	// ErrInvalidHeirCount is returned for son or daughter counts outside 0..MaxChildren.
	ErrInvalidHeirCount = errors.New("heir count out of range")

	// ErrConflictingSpouse is returned when both husband and wife are flagged.
	ErrConflictingSpouse = errors.New("husband and wife cannot both be present")

	// ErrNoHeirs is returned when no heir class is present.
	ErrNoHeirs = errors.New("no heirs present")

	// ErrUnresolvedResidue is returned when part of the estate has no heir to absorb it.
	ErrUnresolvedResidue = errors.New("residue has no eligible heir")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidEstateValue, "INVALID_ESTATE_VALUE"},
	{ErrInvalidWivesCount, "INVALID_WIVES_COUNT"},
	{ErrInvalidHeirCount, "INVALID_HEIR_COUNT"},
	{ErrConflictingSpouse, "CONFLICTING_SPOUSE"},
	{ErrNoHeirs, "NO_HEIRS"},
	{ErrUnresolvedResidue, "UNRESOLVED_RESIDUE"},
}

// Code returns the stable message code for an error produced by this package,
// or "INTERNAL_ERROR" for anything else.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "INTERNAL_ERROR"
}
