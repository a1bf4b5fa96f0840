package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/staffdesk/staffdesk/internal/client"
	"github.com/staffdesk/staffdesk/internal/forms"
	"github.com/staffdesk/staffdesk/internal/lib/logger/sl"
	"github.com/staffdesk/staffdesk/internal/models"
)

// TimesheetDetailsView owns a single timesheet's read view plus an inline
// edit form. This view only updates; creation happens on the employee
// details page.
type TimesheetDetailsView struct {
	log *slog.Logger
	api client.BackendIface

	Timesheet models.Timesheet
	Loaded    bool
	NotFound  bool
	LoadError bool

	Form     *forms.TimesheetForm
	FormOpen bool
}

func NewTimesheetDetailsView(log *slog.Logger, api client.BackendIface) *TimesheetDetailsView {
	return &TimesheetDetailsView{
		log: log.With(sl.View("timesheet_details")),
		api: api,
	}
}

// Load fetches one timesheet. Not-found and load-error are distinct terminal
// display states.
func (v *TimesheetDetailsView) Load(ctx context.Context, id int) {
	ts, err := v.api.GetTimesheet(ctx, id)
	switch {
	case errors.Is(err, client.ErrNotFound):
		v.NotFound = true
	case err != nil:
		v.LoadError = true
		v.log.ErrorContext(ctx, "Failed to fetch timesheet", "id", id, sl.Err(err))
	default:
		v.Timesheet = ts
		v.Loaded = true
	}
}

// OpenEdit seeds the inline form from the currently loaded timesheet.
func (v *TimesheetDetailsView) OpenEdit() {
	if !v.Loaded {
		return
	}

	v.Form = forms.FromTimesheet(v.Timesheet)
	v.FormOpen = true
}

// CloseEdit discards the inline form.
func (v *TimesheetDetailsView) CloseEdit() {
	v.FormOpen = false
	v.Form = nil
}

// Submit updates the timesheet, preserving its original employee_id. On
// success the record is refetched and the form closes.
func (v *TimesheetDetailsView) Submit(ctx context.Context) (map[string]string, error) {
	if v.Form == nil || !v.Form.IsEdit() {
		return nil, nil
	}

	if errs := v.Form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	input := v.Form.Input()
	input.EmployeeID = v.Timesheet.EmployeeID

	if _, err := v.api.UpdateTimesheet(ctx, v.Form.ID, input); err != nil {
		v.log.ErrorContext(ctx, "Failed to save timesheet", "id", v.Form.ID, sl.Err(err))
		return nil, fmt.Errorf("failed to save timesheet %d: %w", v.Form.ID, err)
	}

	refreshed, err := v.api.GetTimesheet(ctx, v.Form.ID)
	if err != nil {
		v.log.WarnContext(ctx, "Failed to refetch timesheet after update", "id", v.Form.ID, sl.Err(err))
	} else {
		v.Timesheet = refreshed
	}

	v.CloseEdit()

	return nil, nil
}
