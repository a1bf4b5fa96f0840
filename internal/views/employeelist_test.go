package views_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/views"
	mocks "github.com/staffdesk/staffdesk/mock"
)

func listFixture() models.EmployeePage {
	return models.EmployeePage{
		Data: []models.Employee{
			{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Department: "R&D", JobTitle: "Engineer", Salary: 30},
			{ID: 2, Name: "Grace Hopper", Email: "grace@example.com", Department: "R&D", JobTitle: "Admiral", Salary: 10},
			{ID: 5, Name: "Alan Turing", Email: "alan@example.com", Department: "Research", JobTitle: "Engineer", Salary: 20},
			{ID: 7, Name: "Edsger Dijkstra", Email: "edsger@example.com", Department: "Research", JobTitle: "Professor", Salary: 25},
		},
		CurrentPage: 1,
		LastPage:    2,
		Total:       4,
	}
}

func TestFetch_ReplacesCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)

	require.NoError(t, view.Fetch(ctx, 1))
	assert.Len(t, view.Employees, 4)
	assert.Len(t, view.Visible, 4)
	assert.Equal(t, models.Pagination{CurrentPage: 1, LastPage: 2, Total: 4}, view.Cursor)
	assert.False(t, view.LoadError)
}

func TestFetch_PageBelowOneClampsToFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)

	require.NoError(t, view.Fetch(ctx, -3))
}

func TestFetch_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(models.EmployeePage{}, assert.AnError)

	view := views.NewEmployeeListView(slog.Default(), api)

	require.Error(t, view.Fetch(ctx, 1))
	assert.True(t, view.LoadError)
	assert.Empty(t, view.Visible)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	filters := views.FieldFilters{Department: "research"}
	view.ApplyFilters("engineer", filters, views.SortNameAsc)
	first := append([]models.Employee(nil), view.Visible...)

	view.ApplyFilters("engineer", filters, views.SortNameAsc)

	assert.Equal(t, first, view.Visible)
}

func TestApplyFilters_QueryMatchesAnyField(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	view.ApplyFilters("grace@", views.FieldFilters{}, views.SortNone)

	require.Len(t, view.Visible, 1)
	assert.Equal(t, "Grace Hopper", view.Visible[0].Name)
}

func TestApplyFilters_FieldFiltersAreAnded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	view.ApplyFilters("", views.FieldFilters{Department: "research", JobTitle: "engineer"}, views.SortNone)

	require.Len(t, view.Visible, 1)
	assert.Equal(t, "Alan Turing", view.Visible[0].Name)
}

func TestApplyFilters_SalarySort(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(models.EmployeePage{
		Data: []models.Employee{
			{ID: 1, Salary: 30},
			{ID: 2, Salary: 10},
			{ID: 3, Salary: 20},
		},
		CurrentPage: 1, LastPage: 1, Total: 3,
	}, nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	view.ApplyFilters("", views.FieldFilters{}, views.SortSalaryAsc)
	assert.Equal(t, []float64{10, 20, 30}, salaries(view.Visible))

	view.ApplyFilters("", views.FieldFilters{}, views.SortSalaryDesc)
	assert.Equal(t, []float64{30, 20, 10}, salaries(view.Visible))
}

func TestApplyFilters_DoesNotTouchLoadedPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	view.ApplyFilters("nobody-matches-this", views.FieldFilters{}, views.SortNone)

	assert.Empty(t, view.Visible)
	assert.Len(t, view.Employees, 4)
}

func TestDelete_RemovesRowAndDecrementsTotal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)
	api.On("DeleteEmployee", ctx, 5).Return(nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	view.SetRemovalDelay(0)
	require.NoError(t, view.Fetch(ctx, 1))
	view.ApplyFilters("", views.FieldFilters{}, views.SortNone)

	require.NoError(t, view.Delete(ctx, 5, true))

	assert.Equal(t, []int{1, 2, 7}, ids(view.Employees))
	assert.Equal(t, []int{1, 2, 7}, ids(view.Visible))
	assert.Equal(t, 3, view.Cursor.Total)
	assert.Zero(t, view.PendingRemoval)
}

func TestDelete_Unconfirmed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	view.SetRemovalDelay(0)
	require.NoError(t, view.Fetch(ctx, 1))

	require.NoError(t, view.Delete(ctx, 5, false))

	assert.Len(t, view.Employees, 4)
	api.AssertNotCalled(t, "DeleteEmployee", ctx, 5)
}

func TestDelete_FailureKeepsRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)
	api.On("DeleteEmployee", ctx, 5).Return(assert.AnError)

	view := views.NewEmployeeListView(slog.Default(), api)
	view.SetRemovalDelay(0)
	require.NoError(t, view.Fetch(ctx, 1))

	require.Error(t, view.Delete(ctx, 5, true))

	assert.Equal(t, []int{1, 2, 5, 7}, ids(view.Employees))
	assert.Zero(t, view.PendingRemoval)
	assert.Equal(t, 4, view.Cursor.Total)
}

func TestCloseModal_RefetchesCurrentPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil).Twice()

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	view.OpenEdit(2)
	assert.True(t, view.ModalOpen)
	assert.Equal(t, 2, view.SelectedID)

	require.NoError(t, view.CloseModal(ctx))
	assert.False(t, view.ModalOpen)
	assert.Zero(t, view.SelectedID)
}

func TestPagination_Bounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("ListEmployees", ctx, 1).Return(listFixture(), nil)

	view := views.NewEmployeeListView(slog.Default(), api)
	require.NoError(t, view.Fetch(ctx, 1))

	assert.False(t, view.HasPrev())
	assert.True(t, view.HasNext())
}

func ids(employees []models.Employee) []int {
	out := make([]int, 0, len(employees))
	for _, emp := range employees {
		out = append(out, emp.ID)
	}
	return out
}

func salaries(employees []models.Employee) []float64 {
	out := make([]float64, 0, len(employees))
	for _, emp := range employees {
		out = append(out, emp.Salary)
	}
	return out
}
