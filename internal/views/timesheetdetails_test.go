package views_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk/internal/client"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/views"
	mocks "github.com/staffdesk/staffdesk/mock"
)

func TestTimesheetLoad_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42, Summary: "onboarding"}, nil)

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.Load(ctx, 11)

	assert.True(t, view.Loaded)
	assert.Equal(t, "onboarding", view.Timesheet.Summary)
}

func TestTimesheetLoad_NotFoundVersusError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	notFoundAPI := mocks.NewBackendIface(t)
	notFoundAPI.On("GetTimesheet", ctx, 99).
		Return(models.Timesheet{}, &client.APIError{StatusCode: http.StatusNotFound})

	missing := views.NewTimesheetDetailsView(slog.Default(), notFoundAPI)
	missing.Load(ctx, 99)

	assert.True(t, missing.NotFound)
	assert.False(t, missing.LoadError)

	failingAPI := mocks.NewBackendIface(t)
	failingAPI.On("GetTimesheet", ctx, 11).Return(models.Timesheet{}, assert.AnError)

	failed := views.NewTimesheetDetailsView(slog.Default(), failingAPI)
	failed.Load(ctx, 11)

	assert.False(t, failed.NotFound)
	assert.True(t, failed.LoadError)
}

func TestTimesheetOpenEdit_RequiresLoadedRecord(t *testing.T) {
	t.Parallel()

	api := mocks.NewBackendIface(t)

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.OpenEdit()

	assert.False(t, view.FormOpen)
	assert.Nil(t, view.Form)
}

func TestTimesheetSubmit_PreservesEmployeeID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42, StartTime: "2024-01-01T09:00", EndTime: "2024-01-01T17:00"}, nil).
		Once()
	api.On("UpdateTimesheet", ctx, 11, models.TimesheetInput{
		EmployeeID: 42,
		StartTime:  "2024-01-01T09:00",
		EndTime:    "2024-01-01T18:00",
	}).Return(models.Timesheet{ID: 11, EmployeeID: 42}, nil)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42, EndTime: "2024-01-01T18:00"}, nil).
		Once()

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.Load(ctx, 11)

	view.OpenEdit()
	view.Form.EndTime = "2024-01-01T18:00"

	errs, err := view.Submit(ctx)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.False(t, view.FormOpen)
	assert.Equal(t, "2024-01-01T18:00", view.Timesheet.EndTime)
}

func TestTimesheetSubmit_ValidationErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42}, nil)

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.Load(ctx, 11)
	view.OpenEdit()

	errs, err := view.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Start time is required.", errs["start_time"])
	assert.True(t, view.FormOpen)
}

func TestTimesheetSubmit_RefetchFailureKeepsStaleRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42, StartTime: "2024-01-01T09:00", EndTime: "2024-01-01T17:00"}, nil).
		Once()
	api.On("UpdateTimesheet", ctx, 11, models.TimesheetInput{
		EmployeeID: 42,
		StartTime:  "2024-01-01T09:00",
		EndTime:    "2024-01-01T18:00",
	}).Return(models.Timesheet{ID: 11, EmployeeID: 42}, nil)
	api.On("GetTimesheet", ctx, 11).Return(models.Timesheet{}, assert.AnError).Once()

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.Load(ctx, 11)

	view.OpenEdit()
	view.Form.EndTime = "2024-01-01T18:00"

	errs, err := view.Submit(ctx)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.False(t, view.FormOpen)
	assert.Equal(t, "2024-01-01T17:00", view.Timesheet.EndTime)
}

func TestTimesheetSubmit_UpdateFailureKeepsFormOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := mocks.NewBackendIface(t)
	api.On("GetTimesheet", ctx, 11).
		Return(models.Timesheet{ID: 11, EmployeeID: 42, StartTime: "2024-01-01T09:00", EndTime: "2024-01-01T17:00"}, nil)
	api.On("UpdateTimesheet", ctx, 11, models.TimesheetInput{
		EmployeeID: 42,
		StartTime:  "2024-01-01T09:00",
		EndTime:    "2024-01-01T17:00",
	}).Return(models.Timesheet{}, assert.AnError)

	view := views.NewTimesheetDetailsView(slog.Default(), api)
	view.Load(ctx, 11)
	view.OpenEdit()

	errs, err := view.Submit(ctx)

	require.Error(t, err)
	assert.Empty(t, errs)
	assert.True(t, view.FormOpen)
}
