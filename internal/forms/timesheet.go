package forms

import (
	"github.com/staffdesk/staffdesk/internal/models"
)

// TimesheetForm owns the inline create/edit state for one timesheet. A zero
// ID means create; EmployeeID is fixed by the owning view and never editable.
//
// Start/end ordering is deliberately not checked here: the console has never
// enforced start_time < end_time and the backend is authoritative.
type TimesheetForm struct {
	ID         int
	EmployeeID int
	StartTime  string
	EndTime    string
	Summary    string
}

// NewTimesheetForm returns an empty creation form scoped to an employee.
func NewTimesheetForm(employeeID int) *TimesheetForm {
	return &TimesheetForm{EmployeeID: employeeID}
}

// FromTimesheet seeds an edit form from a fetched timesheet.
func FromTimesheet(ts models.Timesheet) *TimesheetForm {
	return &TimesheetForm{
		ID:         ts.ID,
		EmployeeID: ts.EmployeeID,
		StartTime:  ts.StartTime,
		EndTime:    ts.EndTime,
		Summary:    ts.Summary,
	}
}

// Validate computes a field-to-message mapping; an empty map means the form
// may be submitted.
func (f *TimesheetForm) Validate() map[string]string {
	errs := make(map[string]string)

	if f.StartTime == "" {
		errs["start_time"] = "Start time is required."
	}
	if f.EndTime == "" {
		errs["end_time"] = "End time is required."
	}

	return errs
}

// Input builds the JSON payload for the create/update call.
func (f *TimesheetForm) Input() models.TimesheetInput {
	return models.TimesheetInput{
		EmployeeID: f.EmployeeID,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		Summary:    f.Summary,
	}
}

// IsEdit reports whether the form targets an existing timesheet.
func (f *TimesheetForm) IsEdit() bool {
	return f.ID != 0
}
