// Package form models the create/edit form flow: a two-state machine (closed
// and open, with open split into create and edit mode) plus the local
// pre-check run before any network call.
package form

import (
	"time"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
)

// Form tracks the state of the create/edit dialog.
type Form struct {
	open bool
	// editing is the id of the record being edited; zero means create mode.
	editing int
	Fields  model.ApplicationInput
}

// IsOpen reports whether the form is currently open.
func (f *Form) IsOpen() bool {
	return f.open
}

// IsEdit reports whether the open form is editing an existing record.
func (f *Form) IsEdit() bool {
	return f.open && f.editing != 0
}

// EditingID returns the id of the record being edited, zero in create mode.
func (f *Form) EditingID() int {
	return f.editing
}

// OpenCreate opens the form with defaults: today's date, status Applied,
// empty text fields.
func (f *Form) OpenCreate() {
	f.open = true
	f.editing = 0
	f.Fields = model.ApplicationInput{
		Date:   time.Now().Format(model.DateLayout),
		Status: model.StatusApplied,
	}
}

// OpenEdit opens the form pre-filled from an existing record.
func (f *Form) OpenEdit(app model.Application) {
	f.open = true
	f.editing = app.ID
	f.Fields = model.ApplicationInput{
		Company:  app.Company,
		Role:     app.Role,
		Date:     app.Date,
		Status:   app.Status,
		Location: app.Location,
		Notes:    app.Notes,
	}
}

// Close resets the form to the closed state.
func (f *Form) Close() {
	f.open = false
	f.editing = 0
	f.Fields = model.ApplicationInput{}
}

// PreCheck runs the client-side check before submission: company, role and
// date must be non-empty. The status enumeration is deliberately left to the
// server, which re-validates everything.
func (f *Form) PreCheck() bool {
	return f.Fields.Company != "" && f.Fields.Role != "" && f.Fields.Date != ""
}
