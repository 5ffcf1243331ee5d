package models

// WasteCodeType is the top-level waste classification category.
type WasteCodeType string

const (
	// WasteCodeNotApplicable denotes small waste: no carrier transport,
	// quantities in kilograms or litres.
	WasteCodeNotApplicable WasteCodeType = "NotApplicable"
	// WasteCodeBaselAnnexIX is a Basel Annex IX bulk classification.
	WasteCodeBaselAnnexIX WasteCodeType = "BaselAnnexIX"
	// WasteCodeOECD is an OECD bulk classification.
	WasteCodeOECD WasteCodeType = "OECD"
	// WasteCodeAnnexIIIA is an Annex IIIA bulk classification.
	WasteCodeAnnexIIIA WasteCodeType = "AnnexIIIA"
	// WasteCodeAnnexIIIB is an Annex IIIB bulk classification.
	WasteCodeAnnexIIIB WasteCodeType = "AnnexIIIB"
)

// WasteCode is the tagged classification of the waste. Code is empty when
// Type is WasteCodeNotApplicable.
type WasteCode struct {
	Type WasteCodeType `json:"type"`
	Code string        `json:"code,omitempty"`
}

// IsSmall reports whether this classification denotes small waste.
func (w WasteCode) IsSmall() bool {
	return w.Type == WasteCodeNotApplicable
}

// WasteDescriptionSection holds the waste classification and description.
// EWCCodes, NationalCode and Description are bulk-only carry fields that a
// cascade may clear when the section is still Started.
type WasteDescriptionSection struct {
	Status       SectionStatus  `json:"status"`
	WasteCode    *WasteCode     `json:"wasteCode,omitempty"`
	EWCCodes     []string       `json:"ewcCodes,omitempty"`
	NationalCode OptionalString `json:"nationalCode,omitempty"`
	Description  string         `json:"description,omitempty"`
}

// CommittedWasteCode returns the classification if the section carries one,
// regardless of whether the section is Started or Complete.
func (s WasteDescriptionSection) CommittedWasteCode() *WasteCode {
	if !s.Status.HasPayload() {
		return nil
	}
	return s.WasteCode
}
