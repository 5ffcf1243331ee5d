package models

// CodeEntry is one entry of a reference-data code list.
type CodeEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RefSnapshot is an immutable bundle of the reference-data lists one call or
// batch validates against. Fetched once per call, never refreshed mid-call.
type RefSnapshot struct {
	WasteCodes      map[WasteCodeType][]CodeEntry
	EWCCodes        []CodeEntry
	Countries       []string
	CountriesWithUK []string
	RecoveryCodes   []CodeEntry
	DisposalCodes   []CodeEntry
}
