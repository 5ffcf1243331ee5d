// Package validation contains the pure field and row validators for
// declarations. Every function maps loosely-typed input to a typed value or
// a FieldError; errors are accumulated by callers, never short-circuited.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/example/annex7/internal/models"
)

// Field length limits.
const (
	ReferenceMaxLength   = 20
	FreeTextMaxLength    = 250
	DescriptionMaxLength = 100
	MaxEWCCodes          = 5
	// SmallWasteLimitKg caps laboratory waste quantities (kilograms or litres).
	SmallWasteLimitKg = 25
)

var (
	referenceRe = regexp.MustCompile(`^[a-zA-Z0-9\-/\\_ ]+$`)
	postcodeRe  = regexp.MustCompile(`^[A-Za-z]{1,2}\d{1,2}[A-Za-z]?\s?\d[A-Za-z]{2}$`)
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe     = regexp.MustCompile(`^[+()0-9 -]{7,20}$`)
	ewcCodeRe   = regexp.MustCompile(`^\d{2}\s?\d{2}\s?\d{2}\*?$`)
)

// Reference validates the exporter's own reference for a declaration.
func Reference(value string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr("Reference", "enter a reference")
	}
	if len(value) > ReferenceMaxLength {
		return "", fieldErr("Reference", fmt.Sprintf("the reference must be %d characters or less", ReferenceMaxLength))
	}
	if !referenceRe.MatchString(value) {
		return "", fieldErr("Reference", "the reference can only contain letters, numbers, spaces, hyphens, slashes and underscores")
	}
	return value, nil
}

// FreeText validates a required free-text value against a length cap.
func FreeText(field, value string, max int) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr(field, "enter a value")
	}
	if len(value) > max {
		return "", fieldErr(field, fmt.Sprintf("value must be %d characters or less", max))
	}
	return value, nil
}

// Postcode validates a UK postcode. Empty input is allowed; postcodes are
// optional on every address that carries one.
func Postcode(field, value string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !postcodeRe.MatchString(value) {
		return "", fieldErr(field, "enter a real postcode")
	}
	return value, nil
}

// Email validates an email address.
func Email(field, value string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr(field, "enter an email address")
	}
	if len(value) > FreeTextMaxLength || !emailRe.MatchString(value) {
		return "", fieldErr(field, "enter a real email address")
	}
	return value, nil
}

// Phone validates a phone number.
func Phone(field, value string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr(field, "enter a phone number")
	}
	if !phoneRe.MatchString(value) {
		return "", fieldErr(field, "enter a real phone number")
	}
	return value, nil
}

// Fax validates a fax number. Empty input is allowed.
func Fax(field, value string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !phoneRe.MatchString(value) {
		return "", fieldErr(field, "enter a real fax number")
	}
	return value, nil
}

// Country matches a country name against the supplied snapshot list,
// case-insensitively, and returns the canonical spelling.
func Country(field, value string, countries []string) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr(field, "enter a country")
	}
	for _, c := range countries {
		if strings.EqualFold(c, value) {
			return c, nil
		}
	}
	return "", fieldErr(field, fmt.Sprintf("%q is not a recognised country", value))
}

// EWCCode validates one European Waste Catalogue code against the snapshot.
func EWCCode(field, value string, codes []models.CodeEntry) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if !ewcCodeRe.MatchString(value) {
		return "", fieldErr(field, fmt.Sprintf("%q is not a valid EWC code", value))
	}
	normalized := strings.ReplaceAll(strings.TrimSuffix(value, "*"), " ", "")
	for _, c := range codes {
		if strings.ReplaceAll(c.Code, " ", "") == normalized {
			return c.Code, nil
		}
	}
	return "", fieldErr(field, fmt.Sprintf("EWC code %q is not in the catalogue", value))
}

// CodeInList matches a code against a reference-data list.
func CodeInList(field, value string, codes []models.CodeEntry) (string, *models.FieldError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldErr(field, "enter a code")
	}
	for _, c := range codes {
		if strings.EqualFold(c.Code, value) {
			return c.Code, nil
		}
	}
	return "", fieldErr(field, fmt.Sprintf("code %q is not recognised", value))
}

// DatePlausible checks that a collection date is a real calendar date that
// is not in the past relative to today.
func DatePlausible(d models.CollectionDate, today time.Time) bool {
	if d.Year < 1000 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return false
	}
	date := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow (e.g. 31 February becomes 2 March);
	// reject anything that moved.
	if date.Day() != d.Day || int(date.Month()) != d.Month || date.Year() != d.Year {
		return false
	}
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(startOfToday)
}

// Quantity parses and bounds-checks a numeric amount for the given unit.
// Small-waste units carry the laboratory limit; bulk units only require a
// positive amount.
func Quantity(field, raw string, unit models.QuantityUnit) (float64, *models.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fieldErr(field, "enter an amount")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fieldErr(field, "the amount must be a number")
	}
	if amount <= 0 {
		return 0, fieldErr(field, "the amount must be greater than 0")
	}
	if !unit.BulkUnit() && amount > SmallWasteLimitKg {
		return 0, fieldErr(field, fmt.Sprintf("small waste cannot exceed %d %s", SmallWasteLimitKg, strings.ToLower(string(unit))+"s"))
	}
	return amount, nil
}

// YesNo parses a Yes/No column. Empty input is an error.
func YesNo(field, value string) (bool, *models.FieldError) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, fieldErr(field, "enter Yes or No")
	}
}

// EstimateFlag parses an Estimate/Actual column.
func EstimateFlag(field, value string) (bool, *models.FieldError) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "estimate", "estimated":
		return true, nil
	case "actual":
		return false, nil
	default:
		return false, fieldErr(field, "enter Estimate or Actual")
	}
}

// TransportMeans parses a means-of-transport column.
func TransportMeans(field, value string) (models.TransportMeans, *models.FieldError) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "road":
		return models.TransportRoad, nil
	case "rail":
		return models.TransportRail, nil
	case "sea":
		return models.TransportSea, nil
	case "air":
		return models.TransportAir, nil
	case "inland waterways", "inlandwaterways":
		return models.TransportInlandWater, nil
	default:
		return "", fieldErr(field, "enter Road, Rail, Sea, Air or Inland Waterways")
	}
}

// SplitMulti splits a semicolon-delimited multi-value column, dropping
// blanks around each entry.
func SplitMulti(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fieldErr(field, message string) *models.FieldError {
	return &models.FieldError{Field: field, Message: message}
}
