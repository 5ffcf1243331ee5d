package models

// Submission is the immutable projection of a fully Complete draft. It
// carries payload only, no status wrappers, and is created exactly once by
// the finalisation step. The draft that produced it is deleted in the same
// logical operation.
type Submission struct {
	ID               string             `json:"id"`
	AccountID        string             `json:"accountId"`
	Reference        string             `json:"reference"`
	WasteDescription WasteDescription   `json:"wasteDescription"`
	WasteQuantity    WasteQuantity      `json:"wasteQuantity"`
	ExporterDetail   ExporterDetail     `json:"exporterDetail"`
	ImporterDetail   ImporterDetail     `json:"importerDetail"`
	CollectionDate   CollectionDate     `json:"collectionDate"`
	Carriers         []Carrier          `json:"carriers"`
	CollectionDetail CollectionDetail   `json:"collectionDetail"`
	UKExitLocation   ExitLocation       `json:"ukExitLocation"`
	TransitCountries []string           `json:"transitCountries"`
	Facilities       []RecoveryFacility `json:"recoveryFacilityDetail"`
	Declaration      DeclarationValues  `json:"submissionDeclaration"`
	State            LifecycleState     `json:"submissionState"`
}

// WasteDescription is the unwrapped waste-description payload.
type WasteDescription struct {
	WasteCode    WasteCode      `json:"wasteCode"`
	EWCCodes     []string       `json:"ewcCodes"`
	NationalCode OptionalString `json:"nationalCode,omitempty"`
	Description  string         `json:"description"`
}

// ExporterDetail is the unwrapped exporter payload.
type ExporterDetail struct {
	Address Address `json:"address"`
	Contact Contact `json:"contact"`
}

// ImporterDetail is the unwrapped importer payload.
type ImporterDetail struct {
	Address string  `json:"address"`
	Country string  `json:"country"`
	Contact Contact `json:"contact"`
}

// CollectionDetail is the unwrapped collection-detail payload.
type CollectionDetail struct {
	Address Address `json:"address"`
	Contact Contact `json:"contact"`
}

// ExitLocation is the unwrapped UK exit location payload.
type ExitLocation struct {
	Provided bool   `json:"provided"`
	Value    string `json:"value,omitempty"`
}

// DeclarationData is the typed output of one valid bulk row: everything a
// submission carries except identity, declaration metadata and lifecycle
// state, which are assigned when the declarations are actually created.
type DeclarationData struct {
	Reference        string             `json:"reference"`
	WasteDescription WasteDescription   `json:"wasteDescription"`
	WasteQuantity    WasteQuantity      `json:"wasteQuantity"`
	ExporterDetail   ExporterDetail     `json:"exporterDetail"`
	ImporterDetail   ImporterDetail     `json:"importerDetail"`
	CollectionDate   CollectionDate     `json:"collectionDate"`
	Carriers         []Carrier          `json:"carriers"`
	CollectionDetail CollectionDetail   `json:"collectionDetail"`
	UKExitLocation   ExitLocation       `json:"ukExitLocation"`
	TransitCountries []string           `json:"transitCountries"`
}
