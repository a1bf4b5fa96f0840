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

// EmployeeDetailsView owns one employee's read view plus the embedded
// paginated timesheet sub-list with its own create/edit/delete modal.
type EmployeeDetailsView struct {
	log *slog.Logger
	api client.BackendIface

	Employee  models.Employee
	Loaded    bool
	NotFound  bool
	LoadError bool

	Timesheets     []models.Timesheet
	Cursor         models.Pagination
	TimesheetError bool

	Form      *forms.TimesheetForm
	ModalOpen bool

	// EmployeeModalOpen hosts the embedded employee edit form. Closing it
	// does not refresh the employee; the page shows the stale record until
	// it is reloaded.
	EmployeeModalOpen bool
}

func NewEmployeeDetailsView(log *slog.Logger, api client.BackendIface) *EmployeeDetailsView {
	return &EmployeeDetailsView{
		log: log.With(sl.View("employee_details")),
		api: api,
	}
}

// Load fetches the employee and, independently, the first page of its
// timesheets. A missing employee is a terminal not-found state; other fetch
// failures are terminal load errors. Either way the timesheet fetch is still
// attempted, as its failure only degrades the sub-list.
func (v *EmployeeDetailsView) Load(ctx context.Context, id int) {
	emp, err := v.api.GetEmployee(ctx, id)
	switch {
	case errors.Is(err, client.ErrNotFound):
		v.NotFound = true
	case err != nil:
		v.LoadError = true
		v.log.ErrorContext(ctx, "Failed to fetch employee", "id", id, sl.Err(err))
	default:
		v.Employee = emp
		v.Loaded = true
	}

	v.fetchTimesheets(ctx, id, 1)
}

// ChangePage refetches the timesheet sub-list for the given absolute page.
// Pages outside [1, last_page] are a no-op: the cursor stays unchanged and
// no fetch occurs.
func (v *EmployeeDetailsView) ChangePage(ctx context.Context, page int) {
	if page < 1 || page > v.Cursor.LastPage {
		return
	}

	v.fetchTimesheets(ctx, v.Employee.ID, page)
}

func (v *EmployeeDetailsView) fetchTimesheets(ctx context.Context, employeeID, page int) {
	result, err := v.api.ListTimesheets(ctx, employeeID, page)
	if err != nil {
		v.TimesheetError = true
		v.log.ErrorContext(ctx, "Failed to fetch timesheets", "employee_id", employeeID, sl.Err(err))
		return
	}

	v.Timesheets = result.Data
	v.Cursor = result.Cursor()
	v.TimesheetError = false
}

// OpenTimesheetModal seeds the inline form: empty for create, populated for
// edit. The form is always scoped to the loaded employee.
func (v *EmployeeDetailsView) OpenTimesheetModal(ts *models.Timesheet) {
	if ts != nil {
		v.Form = forms.FromTimesheet(*ts)
	} else {
		v.Form = forms.NewTimesheetForm(v.Employee.ID)
	}
	v.ModalOpen = true
}

// CloseTimesheetModal discards the inline form.
func (v *EmployeeDetailsView) CloseTimesheetModal() {
	v.ModalOpen = false
	v.Form = nil
}

// SubmitTimesheet creates or updates depending on whether the form carries
// an id. On success the current timesheet page is refetched and the modal
// closes; on failure the modal stays open with its unsaved state.
func (v *EmployeeDetailsView) SubmitTimesheet(ctx context.Context) (map[string]string, error) {
	if v.Form == nil {
		return nil, nil
	}

	if errs := v.Form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	input := v.Form.Input()
	input.EmployeeID = v.Employee.ID

	var err error
	if v.Form.IsEdit() {
		_, err = v.api.UpdateTimesheet(ctx, v.Form.ID, input)
	} else {
		_, err = v.api.CreateTimesheet(ctx, input)
	}
	if err != nil {
		v.log.ErrorContext(ctx, "Failed to save timesheet", sl.Err(err))
		return nil, fmt.Errorf("failed to save timesheet: %w", err)
	}

	page := v.Cursor.CurrentPage
	if page < 1 {
		page = 1
	}
	v.fetchTimesheets(ctx, v.Employee.ID, page)
	v.CloseTimesheetModal()

	return nil, nil
}

// DeleteTimesheet removes a timesheet after interactive confirmation. On
// success the entry leaves the local list without a refetch.
func (v *EmployeeDetailsView) DeleteTimesheet(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := v.api.DeleteTimesheet(ctx, id); err != nil {
		v.log.ErrorContext(ctx, "Failed to delete timesheet", "id", id, sl.Err(err))
		return fmt.Errorf("failed to delete timesheet %d: %w", id, err)
	}

	kept := v.Timesheets[:0]
	for _, ts := range v.Timesheets {
		if ts.ID != id {
			kept = append(kept, ts)
		}
	}
	v.Timesheets = kept

	return nil
}

// OpenEmployeeEditModal embeds the employee form for the loaded employee.
func (v *EmployeeDetailsView) OpenEmployeeEditModal() {
	v.EmployeeModalOpen = true
}

// CloseEmployeeEditModal closes the embedded form without refreshing the
// employee record.
func (v *EmployeeDetailsView) CloseEmployeeEditModal() {
	v.EmployeeModalOpen = false
}
