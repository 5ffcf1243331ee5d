package models

// BulkRow is one row of a tabular batch upload: loosely-typed strings
// exactly as they arrived. Multi-value fields (EWC codes, transit countries)
// are semicolon-delimited. Rows are never persisted in this form.
type BulkRow struct {
	Reference string

	// Waste description columns. At most one classification column may be
	// populated; WasteCodeNotApplicable is selected by leaving all four
	// empty and setting Laboratory to "Yes".
	BaselAnnexIXCode string
	OECDCode         string
	AnnexIIIACode    string
	AnnexIIIBCode    string
	Laboratory       string
	EWCCodes         string
	NationalCode     string
	WasteDescription string

	// Quantity columns. Exactly one of the amount columns may be populated.
	QuantityTonnes            string
	QuantityCubicMetres       string
	QuantityKilograms         string
	QuantityLitres            string
	EstimatedOrActualQuantity string

	ExporterOrganisationName   string
	ExporterAddressLine1       string
	ExporterAddressLine2       string
	ExporterTownOrCity         string
	ExporterCountry            string
	ExporterPostcode           string
	ExporterContactFullName    string
	ExporterContactPhoneNumber string
	ExporterFaxNumber          string
	ExporterEmailAddress       string

	ImporterOrganisationName   string
	ImporterAddress            string
	ImporterCountry            string
	ImporterContactFullName    string
	ImporterContactPhoneNumber string
	ImporterFaxNumber          string
	ImporterEmailAddress       string

	CollectionDate                  string
	EstimatedOrActualCollectionDate string

	Carriers [MaxCarriers]BulkRowCarrier

	CollectionOrganisationName   string
	CollectionAddressLine1       string
	CollectionAddressLine2       string
	CollectionTownOrCity         string
	CollectionCountry            string
	CollectionPostcode           string
	CollectionContactFullName    string
	CollectionContactPhoneNumber string
	CollectionFaxNumber          string
	CollectionEmailAddress       string

	WhereWasteLeavesUK string
	TransitCountries   string
}

// BulkRowCarrier is one of the up-to-five carrier blocks on a row.
type BulkRowCarrier struct {
	OrganisationName        string
	Address                 string
	Country                 string
	ContactFullName         string
	ContactPhoneNumber      string
	FaxNumber               string
	EmailAddress            string
	MeansOfTransport        string
	MeansOfTransportDetails string
}

// Empty reports whether every field of the carrier block is blank.
func (c BulkRowCarrier) Empty() bool {
	return c == BulkRowCarrier{}
}

// RowReport is the error bundle for one invalid row, keyed by its position
// in the uploaded file (1-based, header offset already applied).
type RowReport struct {
	RowNumber         int                `json:"rowNumber"`
	FieldErrors       []FieldError       `json:"fieldFormatErrors"`
	CombinationErrors []CombinationError `json:"invalidStructureErrors"`
}
