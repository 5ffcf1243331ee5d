// Package cascade contains the pure rules that keep sections dependent on
// the waste classification consistent when it changes. This is part of the
// functional core - no I/O, only pure functions. The workflow service alone
// decides when to persist the returned values.
package cascade

import "github.com/example/annex7/internal/models"

// ChangeKind classifies a waste-code edit. The four cascade kinds are
// mutually exclusive and evaluated in priority order by Classify.
type ChangeKind int

const (
	// ChangeNone means the classification is unchanged in kind and code;
	// no cascade runs.
	ChangeNone ChangeKind = iota
	// ChangeBulkToSmall resets dependent sections and turns transport off.
	ChangeBulkToSmall
	// ChangeSmallToBulk resets dependent sections and turns transport on.
	ChangeSmallToBulk
	// ChangeBulkDifferentType is a switch between bulk categories; same
	// resets as ChangeSmallToBulk.
	ChangeBulkDifferentType
	// ChangeBulkSameType is a code change within one bulk category;
	// dependent payloads survive but drop from Complete to Started.
	ChangeBulkSameType
)

// Classify determines which cascade, if any, a waste-code edit triggers.
// Either argument may be nil when the corresponding section carries no
// committed classification; no cascade runs in that case.
func Classify(old, new *models.WasteCode) ChangeKind {
	if old == nil || new == nil {
		return ChangeNone
	}
	switch {
	case !old.IsSmall() && new.IsSmall():
		return ChangeBulkToSmall
	case old.IsSmall() && !new.IsSmall():
		return ChangeSmallToBulk
	case !old.IsSmall() && old.Type != new.Type:
		return ChangeBulkDifferentType
	case !old.IsSmall() && old.Code != new.Code:
		return ChangeBulkSameType
	default:
		return ChangeNone
	}
}
