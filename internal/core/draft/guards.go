// Package draft contains the pure business rules for editing one draft
// declaration: lifecycle guards, cardinality guards, the confirmation and
// declaration gates, and cross-section compatibility checks. No I/O.
package draft

import (
	"fmt"

	"github.com/example/annex7/internal/models"
)

// GuardResult is the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanEdit evaluates whether a draft accepts section writes.
// Rule: only InProgress drafts are editable.
func CanEdit(state models.LifecycleState) GuardResult {
	if state.Status != models.LifecycleInProgress {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("draft is %s and cannot be edited", state.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddCarrier evaluates whether another carrier fits on the draft.
// Rule: at most MaxCarriers carriers; exceeding the cap is a rejected
// request, never a silently truncated list.
func CanAddCarrier(current int) GuardResult {
	if current >= models.MaxCarriers {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot add more than %d carriers", models.MaxCarriers),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddFacility evaluates whether another treatment site of the given type
// fits. The total cap spans every facility kind; each kind also carries its
// own sub-limit.
func CanAddFacility(section models.RecoveryFacilitySection, t models.FacilityType) GuardResult {
	if len(section.Values) >= models.MaxFacilitiesTotal {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot add more than %d treatment sites", models.MaxFacilitiesTotal),
		}
	}

	limit := 0
	switch t {
	case models.FacilityLaboratory:
		limit = models.MaxLaboratories
	case models.FacilityInterimSite:
		limit = models.MaxInterimSites
	case models.FacilityRecoveryFacility:
		limit = models.MaxRecoveryFacilities
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown facility type %q", t),
		}
	}

	if section.CountByType(t) >= limit {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot add more than %d sites of type %s", limit, t),
		}
	}
	return GuardResult{Allowed: true}
}

// FacilityTypeAllowed evaluates whether a facility type is permitted for the
// committed classification: small waste treats at a laboratory, bulk waste
// at interim sites and recovery facilities.
func FacilityTypeAllowed(code *models.WasteCode, t models.FacilityType) GuardResult {
	if code == nil {
		return GuardResult{
			Allowed: false,
			Reason:  "waste classification must be chosen before adding treatment sites",
		}
	}
	small := code.IsSmall()
	if small && t != models.FacilityLaboratory {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("small waste cannot use a %s, only a laboratory", t),
		}
	}
	if !small && t == models.FacilityLaboratory {
		return GuardResult{
			Allowed: false,
			Reason:  "bulk waste cannot use a laboratory",
		}
	}
	return GuardResult{Allowed: true}
}
