package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/staffdesk/staffdesk/internal/client"
	"github.com/staffdesk/staffdesk/internal/models"
)

// MinimumWage is the lowest salary the console accepts, in currency units.
// The backend is authoritative; this gate only stops obviously invalid
// submissions before they reach the network.
const MinimumWage = 800

// AdultAge is the minimum employee age, checked by calendar-year difference.
const AdultAge = 18

// IdentityFileTypes lists the file extensions the identity picker accepts.
// Advisory only, the backend re-validates uploads on its own terms.
const IdentityFileTypes = ".pdf,.jpg,.png"

// EmployeeForm owns the create/edit state for a single employee. A zero ID
// means the submission creates a new record. File slots hold only newly
// chosen files; attachments already stored on the backend are exposed as
// preview URLs and are never re-submitted.
type EmployeeForm struct {
	ID          int
	Name        string
	Email       string
	Phone       string
	DateOfBirth string
	StartDate   string
	EndDate     string
	JobTitle    string
	Department  string
	Salary      string

	Photo      *client.FileUpload
	Documents  []client.FileUpload
	Identities []client.FileUpload

	PhotoPreview     string
	DocumentPreviews []string
	IdentityPreviews []string

	// existingIdentities counts identity documents already stored on the
	// backend, so edits do not force a re-upload.
	existingIdentities int
}

// NewEmployeeForm returns an empty creation form.
func NewEmployeeForm() *EmployeeForm {
	return &EmployeeForm{}
}

// FromEmployee seeds an edit form from a fetched employee. Dates are
// normalized to plain YYYY-MM-DD values for editing and attachments are
// turned into preview links via fileURL.
func FromEmployee(emp models.Employee, fileURL func(string) string) *EmployeeForm {
	form := &EmployeeForm{
		ID:                 emp.ID,
		Name:               emp.Name,
		Email:              emp.Email,
		Phone:              emp.Phone,
		DateOfBirth:        DateOnly(emp.DateOfBirth),
		StartDate:          DateOnly(emp.StartDate),
		EndDate:            DateOnly(emp.EndDate),
		JobTitle:           emp.JobTitle,
		Department:         emp.Department,
		Salary:             strconv.FormatFloat(emp.Salary, 'f', -1, 64),
		existingIdentities: len(emp.Identities),
	}

	if emp.Photo != "" {
		form.PhotoPreview = fileURL(emp.Photo)
	}
	for _, doc := range emp.Documents {
		form.DocumentPreviews = append(form.DocumentPreviews, fileURL(doc))
	}
	for _, identity := range emp.Identities {
		form.IdentityPreviews = append(form.IdentityPreviews, fileURL(identity))
	}

	return form
}

// SetField mutates one scalar field by its form name. Unknown names are
// ignored.
func (f *EmployeeForm) SetField(name, value string) {
	switch name {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "date_of_birth":
		f.DateOfBirth = value
	case "start_date":
		f.StartDate = value
	case "end_date":
		f.EndDate = value
	case "job_title":
		f.JobTitle = value
	case "department":
		f.Department = value
	case "salary":
		f.Salary = value
	}
}

// SetPhoto replaces the pending photo selection.
func (f *EmployeeForm) SetPhoto(file *client.FileUpload) {
	f.Photo = file
}

// SetDocuments replaces the pending document selection entirely.
func (f *EmployeeForm) SetDocuments(files []client.FileUpload) {
	f.Documents = files
}

// SetIdentities replaces the pending identity selection entirely.
func (f *EmployeeForm) SetIdentities(files []client.FileUpload) {
	f.Identities = files
}

// Validate computes a field-to-message mapping; an empty map means the form
// may be submitted. It has no side effects, callers must check it before
// Submit. The identity requirement is satisfied by either newly selected
// files or documents already stored on the backend.
func (f *EmployeeForm) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required."
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required."
	}
	if f.DateOfBirth == "" {
		errs["date_of_birth"] = "Date of birth is required."
	}
	if f.Salary == "" {
		errs["salary"] = "Salary is required."
	}
	if strings.TrimSpace(f.JobTitle) == "" {
		errs["job_title"] = "Job title is required."
	}
	if strings.TrimSpace(f.Department) == "" {
		errs["department"] = "Department is required."
	}

	if f.DateOfBirth != "" {
		if birth, err := time.Parse(time.DateOnly, DateOnly(f.DateOfBirth)); err != nil {
			errs["date_of_birth"] = "Date of birth must be a valid date."
		} else if now.Year()-birth.Year() < AdultAge {
			errs["date_of_birth"] = "Employee must be at least 18 years old."
		}
	}

	if f.Salary != "" {
		if salary, err := strconv.ParseFloat(f.Salary, 64); err != nil {
			errs["salary"] = "Salary must be a number."
		} else if salary < MinimumWage {
			errs["salary"] = "Salary must be at least $" + strconv.Itoa(MinimumWage) + "."
		}
	}

	if len(f.Identities) == 0 && f.existingIdentities == 0 {
		errs["identities"] = "At least one identity document is required."
	}

	return errs
}

// Payload builds the multipart upload: every non-empty scalar field, plus
// the file slots only when the user selected new files.
func (f *EmployeeForm) Payload() client.EmployeeUpload {
	scalars := make(map[string]string)
	for name, value := range map[string]string{
		"name":          f.Name,
		"email":         f.Email,
		"phone":         f.Phone,
		"date_of_birth": f.DateOfBirth,
		"start_date":    f.StartDate,
		"end_date":      f.EndDate,
		"job_title":     f.JobTitle,
		"department":    f.Department,
		"salary":        f.Salary,
	} {
		if value != "" {
			scalars[name] = value
		}
	}

	return client.EmployeeUpload{
		Scalars:    scalars,
		Photo:      f.Photo,
		Documents:  f.Documents,
		Identities: f.Identities,
	}
}

// IsEdit reports whether the form targets an existing employee.
func (f *EmployeeForm) IsEdit() bool {
	return f.ID != 0
}

// DateOnly trims a backend timestamp down to its YYYY-MM-DD part.
func DateOnly(value string) string {
	if value == "" {
		return ""
	}
	if idx := strings.IndexAny(value, "T "); idx > 0 {
		return value[:idx]
	}
	return value
}
