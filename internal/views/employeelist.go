package views

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/staffdesk/staffdesk/internal/client"
	"github.com/staffdesk/staffdesk/internal/lib/logger/sl"
	"github.com/staffdesk/staffdesk/internal/models"
)

// SortKey selects the stable sort applied to the filtered employee set.
type SortKey string

const (
	SortNone       SortKey = ""
	SortSalaryAsc  SortKey = "salary_asc"
	SortSalaryDesc SortKey = "salary_desc"
	SortNameAsc    SortKey = "name_asc"
	SortNameDesc   SortKey = "name_desc"
	SortEmailAsc   SortKey = "email_asc"
	SortEmailDesc  SortKey = "email_desc"
)

// FieldFilters are independent case-insensitive substring matches, ANDed
// together.
type FieldFilters struct {
	Name       string
	Department string
	JobTitle   string
}

// defaultRemovalDelay mirrors the fade-out the console plays before a
// confirmed delete request is issued.
const defaultRemovalDelay = 500 * time.Millisecond

// EmployeeListView owns the paginated employee collection: one loaded server
// page, a derived filtered/sorted visible set, and the modal bookkeeping for
// the embedded create/edit form. Filtering never leaves the loaded page and
// never reaches the server.
type EmployeeListView struct {
	log          *slog.Logger
	api          client.BackendIface
	removalDelay time.Duration

	Employees []models.Employee
	Visible   []models.Employee
	Cursor    models.Pagination
	LoadError bool

	// PendingRemoval is the id of the row currently fading out, zero when
	// none.
	PendingRemoval int
	SelectedID     int
	ModalOpen      bool
}

func NewEmployeeListView(log *slog.Logger, api client.BackendIface) *EmployeeListView {
	return &EmployeeListView{
		log:          log.With(sl.View("employee_list")),
		api:          api,
		removalDelay: defaultRemovalDelay,
	}
}

// SetRemovalDelay overrides the pre-delete display delay.
func (v *EmployeeListView) SetRemovalDelay(delay time.Duration) {
	v.removalDelay = delay
}

// Fetch replaces the in-memory collection and pagination cursor with the
// server's page.
func (v *EmployeeListView) Fetch(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	result, err := v.api.ListEmployees(ctx, page)
	if err != nil {
		v.LoadError = true
		v.log.ErrorContext(ctx, "Failed to fetch employees", sl.Err(err))
		return fmt.Errorf("failed to fetch employees: %w", err)
	}

	v.Employees = result.Data
	v.Visible = append([]models.Employee(nil), result.Data...)
	v.Cursor = result.Cursor()
	v.LoadError = false

	return nil
}

// ApplyFilters derives the visible set from the currently loaded page only:
// search query first (any field, case-insensitive substring), then the field
// filters ANDed together, then a stable sort. Applying the same arguments
// twice yields the same set and order.
func (v *EmployeeListView) ApplyFilters(query string, filters FieldFilters, sortKey SortKey) {
	visible := make([]models.Employee, 0, len(v.Employees))

	for _, emp := range v.Employees {
		if query != "" && !matchesAnyField(emp, query) {
			continue
		}
		if !containsFold(emp.Name, filters.Name) {
			continue
		}
		if !containsFold(emp.Department, filters.Department) {
			continue
		}
		if !containsFold(emp.JobTitle, filters.JobTitle) {
			continue
		}
		visible = append(visible, emp)
	}

	sortEmployees(visible, sortKey)
	v.Visible = visible
}

// OpenCreate opens the embedded employee form modal without a seed id.
func (v *EmployeeListView) OpenCreate() {
	v.SelectedID = 0
	v.ModalOpen = true
}

// OpenEdit opens the embedded employee form modal seeded with id.
func (v *EmployeeListView) OpenEdit(id int) {
	v.SelectedID = id
	v.ModalOpen = true
}

// CloseModal closes the modal and unconditionally refetches the current page
// so a create or edit shows up.
func (v *EmployeeListView) CloseModal(ctx context.Context) error {
	v.ModalOpen = false
	v.SelectedID = 0

	return v.Fetch(ctx, v.Cursor.CurrentPage)
}

// Delete removes an employee after interactive confirmation: the row is
// marked pending-removal for the fade-out, the delete request is issued
// after the display delay, and on success the row disappears from both the
// raw and the filtered collections. On failure only the marker is cleared;
// the row keeps its place.
func (v *EmployeeListView) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return nil
	}

	v.PendingRemoval = id
	time.Sleep(v.removalDelay)

	err := v.api.DeleteEmployee(ctx, id)
	v.PendingRemoval = 0

	if err != nil {
		v.log.ErrorContext(ctx, "Failed to delete employee", "id", id, sl.Err(err))
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	v.Employees = removeEmployee(v.Employees, id)
	v.Visible = removeEmployee(v.Visible, id)
	if v.Cursor.Total > 0 {
		v.Cursor.Total--
	}

	return nil
}

// HasPrev reports whether the previous-page control is enabled.
func (v *EmployeeListView) HasPrev() bool {
	return v.Cursor.CurrentPage > 1
}

// HasNext reports whether the next-page control is enabled.
func (v *EmployeeListView) HasNext() bool {
	return v.Cursor.CurrentPage < v.Cursor.LastPage
}

func removeEmployee(employees []models.Employee, id int) []models.Employee {
	kept := employees[:0]
	for _, emp := range employees {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}

	return kept
}

func matchesAnyField(emp models.Employee, query string) bool {
	fields := []string{
		strconv.Itoa(emp.ID),
		emp.Name,
		emp.Email,
		emp.Phone,
		emp.JobTitle,
		emp.Department,
		emp.DateOfBirth,
		emp.StartDate,
		emp.EndDate,
		strconv.FormatFloat(emp.Salary, 'f', -1, 64),
	}

	for _, field := range fields {
		if containsFold(field, query) {
			return true
		}
	}

	return false
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

func sortEmployees(employees []models.Employee, key SortKey) {
	switch key {
	case SortSalaryAsc:
		sort.SliceStable(employees, func(i, j int) bool { return employees[i].Salary < employees[j].Salary })
	case SortSalaryDesc:
		sort.SliceStable(employees, func(i, j int) bool { return employees[i].Salary > employees[j].Salary })
	case SortNameAsc:
		sort.SliceStable(employees, func(i, j int) bool { return lessFold(employees[i].Name, employees[j].Name) })
	case SortNameDesc:
		sort.SliceStable(employees, func(i, j int) bool { return lessFold(employees[j].Name, employees[i].Name) })
	case SortEmailAsc:
		sort.SliceStable(employees, func(i, j int) bool { return lessFold(employees[i].Email, employees[j].Email) })
	case SortEmailDesc:
		sort.SliceStable(employees, func(i, j int) bool { return lessFold(employees[j].Email, employees[i].Email) })
	case SortNone:
	}
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
