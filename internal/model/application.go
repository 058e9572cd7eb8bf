package model

import "time"

var (
	// StatusApplied indicates that the application has been submitted
	StatusApplied = "Applied"
	// StatusInterview indicates that the applicant is in the interview stage
	StatusInterview = "Interview"
	// StatusOffer indicates that the applicant has received an offer
	StatusOffer = "Offer"
	// StatusRejected indicates that the application has been rejected
	StatusRejected = "Rejected"
)

// Statuses is the closed set of valid application statuses.
var Statuses = []string{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// DateLayout is the calendar date format records are stored with.
const DateLayout = "2006-01-02"

// Application represents one tracked job application
type Application struct {
	ID       int    `json:"id"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ApplicationInput carries the client-supplied fields of an application,
// before the server assigns an id.
type ApplicationInput struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// ValidStatus reports whether s is one of the four enumerated statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks the required fields of an application input and returns
// every failing condition as a human-readable message. It never stops at the
// first failure so the client can surface all problems at once.
func (in ApplicationInput) Validate() []string {
	var errs []string
	if in.Company == "" {
		errs = append(errs, "company is required and must be a non-empty string")
	}
	if in.Role == "" {
		errs = append(errs, "role is required and must be a non-empty string")
	}
	if in.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(DateLayout, in.Date); err != nil {
		errs = append(errs, "date must be a valid calendar date in YYYY-MM-DD format")
	}
	if !ValidStatus(in.Status) {
		errs = append(errs, "status must be one of: Applied, Interview, Offer, Rejected")
	}
	return errs
}

// ToApplication builds an application record from the input with the given id.
func (in ApplicationInput) ToApplication(id int) Application {
	return Application{
		ID:       id,
		Company:  in.Company,
		Role:     in.Role,
		Date:     in.Date,
		Status:   in.Status,
		Location: in.Location,
		Notes:    in.Notes,
	}
}

// Stats holds aggregate counts over the whole collection
type Stats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"byStatus"`
	OfferRate string         `json:"offerRate"`
}
