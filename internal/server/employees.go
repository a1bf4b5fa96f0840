package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/staffdesk/staffdesk/internal/forms"
	"github.com/staffdesk/staffdesk/internal/lib/logger/sl"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/views"
)

const maxUploadMemory = 32 << 20

var employeeScalarFields = []string{
	"name", "email", "phone", "date_of_birth", "start_date", "end_date",
	"job_title", "department", "salary",
}

type employeeRow struct {
	models.Employee
	PhotoURL       string
	DocumentURLs   []string
	IdentityURLs   []string
	DateOfBirthDay string
	StartDateDay   string
	EndDateDay     string
	PendingRemoval bool
}

type employeeFormData struct {
	Action            string
	ReturnTo          string
	Form              *forms.EmployeeForm
	Errors            map[string]string
	SubmitError       bool
	IdentityFileTypes string
}

type employeeListPage struct {
	LoadError bool

	Rows        []employeeRow
	CurrentPage int
	LastPage    int
	Total       int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int

	Query            string
	FilterName       string
	FilterDepartment string
	FilterJobTitle   string
	Sort             string

	ModalOpen bool
	Form      *employeeFormData
}

func (s *Server) handleEmployeeList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	view := views.NewEmployeeListView(s.log, s.api)
	_ = view.Fetch(ctx, queryInt(r, "page", 1))

	filters := views.FieldFilters{
		Name:       query.Get("name"),
		Department: query.Get("department"),
		JobTitle:   query.Get("job_title"),
	}
	view.ApplyFilters(query.Get("q"), filters, views.SortKey(query.Get("sort")))

	var form *employeeFormData
	switch query.Get("modal") {
	case "create":
		view.OpenCreate()
		form = &employeeFormData{
			Action:            "/employees",
			ReturnTo:          "/employees",
			Form:              forms.NewEmployeeForm(),
			IdentityFileTypes: forms.IdentityFileTypes,
		}
	case "edit":
		view.OpenEdit(queryInt(r, "id", 0))
		form = s.seedEmployeeForm(r, view.SelectedID, "/employees")
	}

	page := employeeListPage{
		LoadError:        view.LoadError,
		Rows:             s.employeeRows(view),
		CurrentPage:      view.Cursor.CurrentPage,
		LastPage:         view.Cursor.LastPage,
		Total:            view.Cursor.Total,
		HasPrev:          view.HasPrev(),
		HasNext:          view.HasNext(),
		PrevPage:         view.Cursor.CurrentPage - 1,
		NextPage:         view.Cursor.CurrentPage + 1,
		Query:            query.Get("q"),
		FilterName:       filters.Name,
		FilterDepartment: filters.Department,
		FilterJobTitle:   filters.JobTitle,
		Sort:             query.Get("sort"),
		ModalOpen:        view.ModalOpen,
		Form:             form,
	}

	s.render(w, r, s.listTmpl, "employee_list", http.StatusOK, page)
}

func (s *Server) handleEmployeeFormPage(w http.ResponseWriter, r *http.Request) {
	id := urlParamInt(r, "id")

	form := s.seedEmployeeForm(r, id, "/employees")
	if form == nil {
		http.NotFound(w, r)
		return
	}

	s.render(w, r, s.formTmpl, "employee_form", http.StatusOK, form)
}

// handleEmployeeSubmit serves both create (no id) and update (id present).
// A validation failure re-renders the form with its unsaved state and field
// errors; a backend failure leaves the form open with a generic error.
func (s *Server) handleEmployeeSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	form := forms.NewEmployeeForm()
	if id != 0 {
		emp, err := s.api.GetEmployee(ctx, id)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to fetch employee before update", "id", id, sl.Err(err))
			form.ID = id
		} else {
			form = forms.FromEmployee(emp, s.api.FileURL)
		}
	}

	for _, field := range employeeScalarFields {
		if _, ok := r.MultipartForm.Value[field]; ok {
			form.SetField(field, r.FormValue(field))
		}
	}

	if err := s.applyUploads(r, form); err != nil {
		s.log.ErrorContext(ctx, "Failed to read uploaded files", sl.Err(err))
		http.Error(w, "invalid file upload", http.StatusBadRequest)
		return
	}

	formData := &employeeFormData{
		Action:            employeeFormAction(id),
		ReturnTo:          returnTo(r),
		Form:              form,
		IdentityFileTypes: forms.IdentityFileTypes,
	}

	if errs := form.Validate(time.Now()); len(errs) > 0 {
		s.metrics.FormRejections.WithLabelValues("employee").Inc()
		formData.Errors = errs
		s.render(w, r, s.formTmpl, "employee_form", http.StatusUnprocessableEntity, formData)
		return
	}

	var err error
	if form.IsEdit() {
		_, err = s.api.UpdateEmployee(ctx, form.ID, form.Payload())
	} else {
		_, err = s.api.CreateEmployee(ctx, form.Payload())
	}
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to save employee", sl.Err(err))
		formData.SubmitError = true
		s.render(w, r, s.formTmpl, "employee_form", http.StatusBadGateway, formData)
		return
	}

	http.Redirect(w, r, returnTo(r), http.StatusSeeOther)
}

// handleEmployeeDelete removes an employee after confirmation and sends the
// browser back to the page it was on. An unconfirmed request changes
// nothing.
func (s *Server) handleEmployeeDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := urlParamInt(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	view := views.NewEmployeeListView(s.log, s.api)
	confirmed := r.FormValue("confirm") == "yes"
	_ = view.Delete(ctx, id, confirmed)

	target := "/employees"
	if page := formInt(r, "page"); page > 1 {
		target += "?page=" + strconv.Itoa(page)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// seedEmployeeForm builds form data for an edit (fetching the employee) or
// a create (id zero). Returns nil when the employee does not exist.
func (s *Server) seedEmployeeForm(r *http.Request, id int, returnPath string) *employeeFormData {
	data := &employeeFormData{
		Action:            employeeFormAction(id),
		ReturnTo:          returnPath,
		Form:              forms.NewEmployeeForm(),
		IdentityFileTypes: forms.IdentityFileTypes,
	}
	if id == 0 {
		return data
	}

	emp, err := s.api.GetEmployee(r.Context(), id)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to fetch employee for form", "id", id, sl.Err(err))
		return nil
	}

	data.Form = forms.FromEmployee(emp, s.api.FileURL)
	return data
}

func (s *Server) applyUploads(r *http.Request, form *forms.EmployeeForm) error {
	photos, err := readUploads(r.MultipartForm, "photo")
	if err != nil {
		return err
	}
	if len(photos) > 0 {
		form.SetPhoto(&photos[0])
	}

	documents, err := readUploads(r.MultipartForm, "documents[]")
	if err != nil {
		return err
	}
	if len(documents) > 0 {
		form.SetDocuments(documents)
	}

	identities, err := readUploads(r.MultipartForm, "identities[]")
	if err != nil {
		return err
	}
	if len(identities) > 0 {
		form.SetIdentities(identities)
	}

	return nil
}

func (s *Server) employeeRows(view *views.EmployeeListView) []employeeRow {
	rows := make([]employeeRow, 0, len(view.Visible))
	for _, emp := range view.Visible {
		row := employeeRow{
			Employee:       emp,
			DateOfBirthDay: forms.DateOnly(emp.DateOfBirth),
			StartDateDay:   forms.DateOnly(emp.StartDate),
			EndDateDay:     forms.DateOnly(emp.EndDate),
			PendingRemoval: view.PendingRemoval == emp.ID,
		}
		if emp.Photo != "" {
			row.PhotoURL = s.api.FileURL(emp.Photo)
		}
		for _, doc := range emp.Documents {
			row.DocumentURLs = append(row.DocumentURLs, s.api.FileURL(doc))
		}
		for _, identity := range emp.Identities {
			row.IdentityURLs = append(row.IdentityURLs, s.api.FileURL(identity))
		}
		rows = append(rows, row)
	}

	return rows
}

func employeeFormAction(id int) string {
	if id == 0 {
		return "/employees"
	}
	return "/employees/" + strconv.Itoa(id)
}

func returnTo(r *http.Request) string {
	target := r.FormValue("return_to")
	// only local redirects
	if target == "" || target[0] != '/' {
		return "/employees"
	}
	return target
}
