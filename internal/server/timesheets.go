package server

import (
	"net/http"
	"strconv"

	"github.com/staffdesk/staffdesk/internal/forms"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/views"
)

type timesheetFormData struct {
	Action      string
	Form        *forms.TimesheetForm
	Errors      map[string]string
	SubmitError bool
}

type employeeDetailsPage struct {
	NotFound  bool
	LoadError bool

	Employee     models.Employee
	PhotoURL     string
	DocumentURLs []string
	IdentityURLs []string
	DateOfBirth  string
	StartDate    string
	EndDate      string

	Timesheets     []models.Timesheet
	TimesheetError bool
	CurrentPage    int
	LastPage       int
	Total          int
	HasPrev        bool
	HasNext        bool
	PrevPage       int
	NextPage       int

	TimesheetModalOpen bool
	TimesheetForm      *timesheetFormData

	EmployeeModalOpen bool
	EmployeeForm      *employeeFormData
}

type timesheetDetailsPage struct {
	NotFound  bool
	LoadError bool

	Timesheet models.Timesheet

	FormOpen bool
	Form     *timesheetFormData
}

func (s *Server) handleEmployeeDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "id")
	query := r.URL.Query()

	view := views.NewEmployeeDetailsView(s.log, s.api)
	view.Load(ctx, id)

	if page := queryInt(r, "ts_page", 1); page != 1 {
		view.ChangePage(ctx, page)
	}

	switch query.Get("modal") {
	case "timesheet-new":
		view.OpenTimesheetModal(nil)
	case "timesheet-edit":
		tsID := queryInt(r, "ts", 0)
		for i := range view.Timesheets {
			if view.Timesheets[i].ID == tsID {
				view.OpenTimesheetModal(&view.Timesheets[i])
				break
			}
		}
	case "employee-edit":
		view.OpenEmployeeEditModal()
	}

	status := http.StatusOK
	if view.NotFound {
		status = http.StatusNotFound
	}

	s.render(w, r, s.detailsTmpl, "employee_details", status, s.detailsPage(view, nil, false))
}

// handleTimesheetSave creates or updates a timesheet from the inline modal
// on the employee details page. Validation and backend failures re-render
// the page with the modal still open.
func (s *Server) handleTimesheetSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := urlParamInt(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	view := views.NewEmployeeDetailsView(s.log, s.api)
	view.Load(ctx, employeeID)
	if !view.Loaded {
		status := http.StatusBadGateway
		if view.NotFound {
			status = http.StatusNotFound
		}
		s.render(w, r, s.detailsTmpl, "employee_details", status, s.detailsPage(view, nil, false))
		return
	}

	if page := formInt(r, "ts_page"); page > 1 {
		view.ChangePage(ctx, page)
	}

	view.Form = &forms.TimesheetForm{
		ID:         formInt(r, "id"),
		EmployeeID: employeeID,
		StartTime:  r.FormValue("start_time"),
		EndTime:    r.FormValue("end_time"),
		Summary:    r.FormValue("summary"),
	}
	view.ModalOpen = true

	errs, err := view.SubmitTimesheet(ctx)
	switch {
	case len(errs) > 0:
		s.metrics.FormRejections.WithLabelValues("timesheet").Inc()
		s.render(w, r, s.detailsTmpl, "employee_details", http.StatusUnprocessableEntity,
			s.detailsPage(view, errs, false))
	case err != nil:
		s.render(w, r, s.detailsTmpl, "employee_details", http.StatusBadGateway,
			s.detailsPage(view, nil, true))
	default:
		s.redirectToDetails(w, r, employeeID, view.Cursor.CurrentPage)
	}
}

// handleTimesheetDelete removes a timesheet after confirmation and returns
// to the owning employee's details page.
func (s *Server) handleTimesheetDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	view := views.NewEmployeeDetailsView(s.log, s.api)
	confirmed := r.FormValue("confirm") == "yes"
	_ = view.DeleteTimesheet(ctx, id, confirmed)

	employeeID := formInt(r, "employee_id")
	if employeeID == 0 {
		http.Redirect(w, r, "/employees", http.StatusSeeOther)
		return
	}

	s.redirectToDetails(w, r, employeeID, formInt(r, "ts_page"))
}

func (s *Server) handleTimesheetDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "timesheetId")

	view := views.NewTimesheetDetailsView(s.log, s.api)
	view.Load(ctx, id)

	if r.URL.Query().Get("modal") == "edit" {
		view.OpenEdit()
	}

	status := http.StatusOK
	if view.NotFound {
		status = http.StatusNotFound
	}

	s.render(w, r, s.timesheetTmpl, "timesheet_details", status, timesheetPage(view, nil, false))
}

// handleTimesheetUpdate saves the inline edit form on the timesheet details
// page.
func (s *Server) handleTimesheetUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "timesheetId")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	view := views.NewTimesheetDetailsView(s.log, s.api)
	view.Load(ctx, id)
	if !view.Loaded {
		status := http.StatusBadGateway
		if view.NotFound {
			status = http.StatusNotFound
		}
		s.render(w, r, s.timesheetTmpl, "timesheet_details", status, timesheetPage(view, nil, false))
		return
	}

	view.OpenEdit()
	view.Form.StartTime = r.FormValue("start_time")
	view.Form.EndTime = r.FormValue("end_time")
	view.Form.Summary = r.FormValue("summary")

	errs, err := view.Submit(ctx)
	switch {
	case len(errs) > 0:
		s.metrics.FormRejections.WithLabelValues("timesheet").Inc()
		s.render(w, r, s.timesheetTmpl, "timesheet_details", http.StatusUnprocessableEntity,
			timesheetPage(view, errs, false))
	case err != nil:
		s.render(w, r, s.timesheetTmpl, "timesheet_details", http.StatusBadGateway,
			timesheetPage(view, nil, true))
	default:
		http.Redirect(w, r, "/timesheet/"+strconv.Itoa(id), http.StatusSeeOther)
	}
}

func (s *Server) detailsPage(view *views.EmployeeDetailsView,
	tsErrors map[string]string, tsSubmitError bool,
) employeeDetailsPage {
	page := employeeDetailsPage{
		NotFound:           view.NotFound,
		LoadError:          view.LoadError,
		Employee:           view.Employee,
		DateOfBirth:        forms.DateOnly(view.Employee.DateOfBirth),
		StartDate:          forms.DateOnly(view.Employee.StartDate),
		EndDate:            forms.DateOnly(view.Employee.EndDate),
		Timesheets:         view.Timesheets,
		TimesheetError:     view.TimesheetError,
		CurrentPage:        view.Cursor.CurrentPage,
		LastPage:           view.Cursor.LastPage,
		Total:              view.Cursor.Total,
		HasPrev:            view.Cursor.CurrentPage > 1,
		HasNext:            view.Cursor.CurrentPage < view.Cursor.LastPage,
		PrevPage:           view.Cursor.CurrentPage - 1,
		NextPage:           view.Cursor.CurrentPage + 1,
		TimesheetModalOpen: view.ModalOpen,
		EmployeeModalOpen:  view.EmployeeModalOpen,
	}

	if view.Employee.Photo != "" {
		page.PhotoURL = s.api.FileURL(view.Employee.Photo)
	}
	for _, doc := range view.Employee.Documents {
		page.DocumentURLs = append(page.DocumentURLs, s.api.FileURL(doc))
	}
	for _, identity := range view.Employee.Identities {
		page.IdentityURLs = append(page.IdentityURLs, s.api.FileURL(identity))
	}

	if view.ModalOpen && view.Form != nil {
		page.TimesheetForm = &timesheetFormData{
			Action:      "/employees/" + strconv.Itoa(view.Employee.ID) + "/timesheets",
			Form:        view.Form,
			Errors:      tsErrors,
			SubmitError: tsSubmitError,
		}
	}

	if view.EmployeeModalOpen {
		page.EmployeeForm = &employeeFormData{
			Action:            employeeFormAction(view.Employee.ID),
			ReturnTo:          "/employees/details/" + strconv.Itoa(view.Employee.ID),
			Form:              forms.FromEmployee(view.Employee, s.api.FileURL),
			IdentityFileTypes: forms.IdentityFileTypes,
		}
	}

	return page
}

func timesheetPage(view *views.TimesheetDetailsView,
	errs map[string]string, submitError bool,
) timesheetDetailsPage {
	page := timesheetDetailsPage{
		NotFound:  view.NotFound,
		LoadError: view.LoadError,
		Timesheet: view.Timesheet,
		FormOpen:  view.FormOpen,
	}

	if view.FormOpen && view.Form != nil {
		page.Form = &timesheetFormData{
			Action:      "/timesheet/" + strconv.Itoa(view.Timesheet.ID),
			Form:        view.Form,
			Errors:      errs,
			SubmitError: submitError,
		}
	}

	return page
}

func (s *Server) redirectToDetails(w http.ResponseWriter, r *http.Request, employeeID, tsPage int) {
	target := "/employees/details/" + strconv.Itoa(employeeID)
	if tsPage > 1 {
		target += "?ts_page=" + strconv.Itoa(tsPage)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
