// Package submission contains the pure business rules for finalising a
// draft: the transaction-id format, the final lifecycle state, and the
// immutable projection builder. No I/O.
package submission

import (
	"fmt"
	"strings"
	"time"
)

// TransactionID derives the downstream transaction id for a finalised
// declaration. The format YYMM_XXXXXXXX (two-digit year, two-digit month,
// first 8 characters of the draft id uppercased) is a cross-system contract
// with downstream consumers; do not change it.
func TransactionID(now time.Time, draftID string) string {
	prefix := draftID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%02d%02d_%s", now.Year()%100, int(now.Month()), strings.ToUpper(prefix))
}
