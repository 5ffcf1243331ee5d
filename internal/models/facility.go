package models

// FacilityType distinguishes the kinds of treatment site on a declaration.
// Bulk waste uses interim sites and recovery facilities; small waste uses a
// laboratory.
type FacilityType string

const (
	FacilityLaboratory       FacilityType = "Laboratory"
	FacilityInterimSite      FacilityType = "InterimSite"
	FacilityRecoveryFacility FacilityType = "RecoveryFacility"
)

// Facility cardinality limits. The total cap spans both bulk facility kinds.
const (
	MaxFacilitiesTotal    = 6
	MaxInterimSites       = 1
	MaxRecoveryFacilities = 5
	MaxLaboratories       = 1
)

// RecoveryFacility is one treatment site. RecoveryCode is set for recovery
// facilities and interim sites; DisposalCode is set for laboratories.
type RecoveryFacility struct {
	ID           string       `json:"id"`
	Type         FacilityType `json:"type"`
	Name         string       `json:"name,omitempty"`
	Address      string       `json:"address,omitempty"`
	Country      string       `json:"country,omitempty"`
	Contact      Contact      `json:"contact,omitempty"`
	RecoveryCode string       `json:"recoveryCode,omitempty"`
	DisposalCode string       `json:"disposalCode,omitempty"`
}

// RecoveryFacilitySection is the facility list. It starts CannotStart and
// only opens once the waste-description section holds a classification.
type RecoveryFacilitySection struct {
	Status SectionStatus      `json:"status"`
	Values []RecoveryFacility `json:"values,omitempty"`
}

// CountByType returns how many facilities of the given type the section holds.
func (s RecoveryFacilitySection) CountByType(t FacilityType) int {
	n := 0
	for _, f := range s.Values {
		if f.Type == t {
			n++
		}
	}
	return n
}
