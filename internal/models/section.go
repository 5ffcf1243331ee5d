// Package models contains the domain types for waste-export declarations.
// These are plain value types with no I/O; all business rules live in
// internal/core and all persistence in internal/adapters.
package models

import "fmt"

// SectionStatus is the completeness status of one declaration section.
type SectionStatus string

const (
	// StatusCannotStart marks a section unreachable given the current state
	// of other sections. It is a value, not an error, and carries no payload.
	StatusCannotStart SectionStatus = "CannotStart"
	// StatusNotStarted marks a reachable section with no data yet.
	StatusNotStarted SectionStatus = "NotStarted"
	// StatusStarted marks a section with a partial payload.
	StatusStarted SectionStatus = "Started"
	// StatusComplete marks a section whose full payload has validated.
	StatusComplete SectionStatus = "Complete"
)

// HasPayload reports whether a section with this status may carry data.
func (s SectionStatus) HasPayload() bool {
	return s == StatusStarted || s == StatusComplete
}

// requireComplete is the shared fail-fast check for payload accessors.
func requireComplete(section string, s SectionStatus) error {
	if s != StatusComplete {
		return fmt.Errorf("section %s is %s, not Complete", section, s)
	}
	return nil
}

// OptionalString is a value the user either provided or explicitly declined
// to provide. Provided=false with a non-empty value never occurs.
type OptionalString struct {
	Provided bool   `json:"provided"`
	Value    string `json:"value,omitempty"`
}

// Address is a UK-style postal address used by exporter and collection
// detail sections.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	TownOrCity   string `json:"townOrCity"`
	Postcode     string `json:"postcode,omitempty"`
	Country      string `json:"country"`
}

// Contact holds the contact block shared by every party on a declaration.
type Contact struct {
	OrganisationName string `json:"organisationName"`
	FullName         string `json:"fullName"`
	Email            string `json:"emailAddress"`
	Phone            string `json:"phoneNumber"`
	Fax              string `json:"faxNumber,omitempty"`
}

// FieldError is a single leaf-field validation failure. It travels inside
// response payloads, never as a Go error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CombinationError reports two otherwise-valid field groups that conflict.
type CombinationError struct {
	Fields  []string `json:"fields"`
	Message string   `json:"message"`
}

func (e CombinationError) String() string {
	return fmt.Sprintf("%v: %s", e.Fields, e.Message)
}
