// Package validators holds the pure field-level checks shared by every
// entity invariant and request validation path. None of them touch the
// store; validators that need store state (email uniqueness, referential
// existence) live behind the repository and are orchestrated by the
// services.
package validators

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// PhonePattern is the single phone format accepted everywhere, e.g.
// 123-456-7890 or +1-234-567-8901. Every phone check goes through this
// one compiled pattern.
const PhonePattern = `^(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}$`

var phoneRegex = regexp.MustCompile(PhonePattern)

// PhoneIsValid reports whether phone is absent or matches PhonePattern.
func PhoneIsValid(phone string) bool {
	return phone == "" || phoneRegex.MatchString(phone)
}

// EmailLooksValid reports whether email is present and plausibly formed.
func EmailLooksValid(email string) bool {
	return strings.Contains(email, "@")
}

// NameIsPresent reports whether name is non-empty after trimming.
func NameIsPresent(name string) bool {
	return strings.TrimSpace(name) != ""
}

// PriceIsValid reports whether price is strictly positive.
func PriceIsValid(price decimal.Decimal) bool {
	return price.IsPositive()
}

// StockIsValid reports whether stock is absent or non-negative.
func StockIsValid(stock *int) bool {
	return stock == nil || *stock >= 0
}

// DedupIDs collapses duplicate ids preserving first-seen order. Duplicate
// product ids in an order request count once for association and total.
func DedupIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// MissingIDs partitions requested against found, returning the requested
// ids that were not found, in request order.
func MissingIDs(requested []uint, found []uint) []uint {
	present := make(map[uint]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []uint
	for _, id := range requested {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
