package naming

import "strings"

const (
	// ExternalLimit is the maximum length of an external account name before its suffix.
	ExternalLimit = 16
	// InternalLimit is the maximum length of an employee account name.
	InternalLimit = 20
	// ExternalSuffix marks consultant and contractor accounts.
	ExternalSuffix = ".ext"
)

// AccountName builds a sAMAccountName-style login from the name parts.
//
// The first candidate that fits the length limit wins:
//
//	given+given2 "." surname+surname2
//	initial(given)+initial(given2) "." surname+surname2
//	initial(given)+initial(given2) "." surname, cut to the limit
//
// The limit applies to the candidate; the suffix is appended after the cut.
func AccountName(given, surname, given2, surname2 string, external bool) string {
	limit, suffix := InternalLimit, ""
	if external {
		limit, suffix = ExternalLimit, ExternalSuffix
	}

	n, n2 := Normalize(given), Normalize(given2)
	c, c2 := Normalize(surname), Normalize(surname2)

	if cand := n + n2 + "." + c + c2; len(cand) <= limit {
		return cand + suffix
	}
	initials := firstChar(n) + firstChar(n2)
	if cand := initials + "." + c + c2; len(cand) <= limit {
		return cand + suffix
	}
	cand := initials + "." + c
	if len(cand) > limit {
		cand = cand[:limit]
	}
	return cand + suffix
}

// FullName joins the non-empty name parts with single spaces, surnames first,
// and marks external people with " (esterno)". The result is never normalised.
func FullName(surname, surname2, given, given2 string, external bool) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{surname, surname2, given, given2} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	full := strings.Join(parts, " ")
	if external {
		full += ExternalMarker
	}
	return full
}

// ExternalMarker is appended to display names of external people.
const ExternalMarker = " (esterno)"

// firstChar returns the first byte of an already normalised (ASCII) fragment.
func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
