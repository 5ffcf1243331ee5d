// Package refdata supplies the code lists declarations validate against.
// The built-in provider serves a fixed in-memory dataset; swapping in a
// provider backed by an upstream service only touches the wiring.
package refdata

import (
	"context"

	"github.com/example/annex7/internal/models"
)

// Provider implements secondary.ReferenceDataProvider from in-memory lists.
type Provider struct {
	wasteCodes    map[models.WasteCodeType][]models.CodeEntry
	ewcCodes      []models.CodeEntry
	countries     []string
	recoveryCodes []models.CodeEntry
	disposalCodes []models.CodeEntry
}

// NewProvider creates a provider serving the built-in dataset.
func NewProvider() *Provider {
	return &Provider{
		wasteCodes:    builtinWasteCodes,
		ewcCodes:      builtinEWCCodes,
		countries:     builtinCountries,
		recoveryCodes: builtinRecoveryCodes,
		disposalCodes: builtinDisposalCodes,
	}
}

// WasteCodes returns the waste-code entries for one bulk category.
func (p *Provider) WasteCodes(ctx context.Context, category models.WasteCodeType) ([]models.CodeEntry, error) {
	return p.wasteCodes[category], nil
}

// EWCCodes returns the European Waste Catalogue entries.
func (p *Provider) EWCCodes(ctx context.Context) ([]models.CodeEntry, error) {
	return p.ewcCodes, nil
}

// Countries returns the country list. The United Kingdom is only a valid
// destination for internal legs, so most callers exclude it.
func (p *Provider) Countries(ctx context.Context, includeUK bool) ([]string, error) {
	if includeUK {
		out := make([]string, 0, len(p.countries)+1)
		out = append(out, "United Kingdom")
		return append(out, p.countries...), nil
	}
	return p.countries, nil
}

// RecoveryCodes returns the permitted recovery operation codes.
func (p *Provider) RecoveryCodes(ctx context.Context) ([]models.CodeEntry, error) {
	return p.recoveryCodes, nil
}

// DisposalCodes returns the permitted disposal operation codes.
func (p *Provider) DisposalCodes(ctx context.Context) ([]models.CodeEntry, error) {
	return p.disposalCodes, nil
}

var builtinWasteCodes = map[models.WasteCodeType][]models.CodeEntry{
	models.WasteCodeBaselAnnexIX: {
		{Code: "B1010", Description: "Metal and metal-alloy wastes in metallic, non-dispersible form"},
		{Code: "B1020", Description: "Clean, uncontaminated metal scrap, including alloys"},
		{Code: "B1030", Description: "Refractory metals containing residues"},
		{Code: "B1050", Description: "Mixed non-ferrous metal, heavy fraction scrap"},
		{Code: "B3011", Description: "Plastic waste destined for recycling"},
		{Code: "B3020", Description: "Paper, paperboard and paper product wastes"},
		{Code: "B3030", Description: "Textile wastes"},
		{Code: "B3140", Description: "Waste pneumatic tyres"},
	},
	models.WasteCodeOECD: {
		{Code: "GB040", Description: "Slags from precious metals and copper processing"},
		{Code: "GC010", Description: "Electrical assemblies consisting only of metals or alloys"},
		{Code: "GC020", Description: "Electronic scrap"},
		{Code: "GC050", Description: "Spent fluid catalytic cracking catalysts"},
		{Code: "GF010", Description: "Glass waste in non-dispersible form"},
		{Code: "GG040", Description: "Coal fired power plant fly ash"},
	},
	models.WasteCodeAnnexIIIA: {
		{Code: "B1010 and B1050", Description: "Mixtures of wastes classified under Basel entries B1010 and B1050"},
		{Code: "B1010 and B1070", Description: "Mixtures of wastes classified under Basel entries B1010 and B1070"},
		{Code: "B3040 and B3080", Description: "Mixtures of wastes classified under Basel entries B3040 and B3080"},
	},
	models.WasteCodeAnnexIIIB: {
		{Code: "BEU04", Description: "Composite packaging consisting of mainly paper and some plastic"},
		{Code: "BEU05", Description: "Clean biodegradable waste from agriculture, horticulture and forestry"},
	},
}

var builtinEWCCodes = []models.CodeEntry{
	{Code: "010101", Description: "Wastes from mineral metalliferous excavation"},
	{Code: "010102", Description: "Wastes from mineral non-metalliferous excavation"},
	{Code: "020101", Description: "Sludges from washing and cleaning"},
	{Code: "020110", Description: "Waste metal"},
	{Code: "150101", Description: "Paper and cardboard packaging"},
	{Code: "150102", Description: "Plastic packaging"},
	{Code: "150107", Description: "Glass packaging"},
	{Code: "160117", Description: "Ferrous metal"},
	{Code: "160118", Description: "Non-ferrous metal"},
	{Code: "170402", Description: "Aluminium"},
	{Code: "170405", Description: "Iron and steel"},
	{Code: "191001", Description: "Iron and steel waste"},
	{Code: "191202", Description: "Ferrous metal"},
	{Code: "200101", Description: "Paper and cardboard"},
	{Code: "200139", Description: "Plastics"},
}

var builtinCountries = []string{
	"Afghanistan",
	"Albania",
	"Algeria",
	"Austria",
	"Belgium",
	"Brazil",
	"Bulgaria",
	"Canada",
	"China",
	"Croatia",
	"Czechia",
	"Denmark",
	"Estonia",
	"Finland",
	"France",
	"Germany",
	"Greece",
	"Hungary",
	"India",
	"Ireland",
	"Italy",
	"Japan",
	"Latvia",
	"Lithuania",
	"Luxembourg",
	"Malaysia",
	"Netherlands",
	"Norway",
	"Pakistan",
	"Poland",
	"Portugal",
	"Romania",
	"Slovakia",
	"Slovenia",
	"Spain",
	"Sweden",
	"Switzerland",
	"Turkey",
	"United States of America",
	"Vietnam",
}

var builtinRecoveryCodes = []models.CodeEntry{
	{Code: "R1", Description: "Use principally as a fuel or other means to generate energy"},
	{Code: "R2", Description: "Solvent reclamation/regeneration"},
	{Code: "R3", Description: "Recycling/reclamation of organic substances not used as solvents"},
	{Code: "R4", Description: "Recycling/reclamation of metals and metal compounds"},
	{Code: "R5", Description: "Recycling/reclamation of other inorganic materials"},
	{Code: "R6", Description: "Regeneration of acids or bases"},
	{Code: "R7", Description: "Recovery of components used for pollution abatement"},
	{Code: "R8", Description: "Recovery of components from catalysts"},
	{Code: "R9", Description: "Oil refining or other reuses of oil"},
	{Code: "R10", Description: "Land treatment resulting in benefit to agriculture or ecology"},
	{Code: "R11", Description: "Use of wastes obtained from any of the operations R1 to R10"},
	{Code: "R12", Description: "Exchange of wastes for submission to any of the operations R1 to R11"},
	{Code: "R13", Description: "Storage of wastes pending any of the operations R1 to R12"},
}

var builtinDisposalCodes = []models.CodeEntry{
	{Code: "D1", Description: "Deposit into or onto land"},
	{Code: "D2", Description: "Land treatment"},
	{Code: "D3", Description: "Deep injection"},
	{Code: "D8", Description: "Biological treatment producing final compounds or mixtures"},
	{Code: "D9", Description: "Physico-chemical treatment producing final compounds or mixtures"},
	{Code: "D10", Description: "Incineration on land"},
	{Code: "D12", Description: "Permanent storage"},
	{Code: "D13", Description: "Blending or mixing prior to submission to any of the operations D1 to D12"},
	{Code: "D14", Description: "Repackaging prior to submission to any of the operations D1 to D13"},
	{Code: "D15", Description: "Storage pending any of the operations D1 to D14"},
}
