package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/models"
)

// ErrNotFound reports that the requested resource does not exist on the
// backend. Detail views use it to tell the not-found terminal state apart
// from other failures.
var ErrNotFound = errors.New("resource not found")

const maxErrorBody = 1 << 20

// APIError is a structured transport failure carrying the backend status
// code and the raw error body the server returned.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// BackendIface is the backend API surface the views depend on, one method
// per (resource, verb) pair. No retry or caching is layered on top; every
// failure surfaces immediately to the calling view.
type BackendIface interface {
	ListEmployees(ctx context.Context, page int) (models.EmployeePage, error)
	GetEmployee(ctx context.Context, id int) (models.Employee, error)
	CreateEmployee(ctx context.Context, upload EmployeeUpload) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id int, upload EmployeeUpload) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
	ListTimesheets(ctx context.Context, employeeID, page int) (models.TimesheetPage, error)
	GetTimesheet(ctx context.Context, id int) (models.Timesheet, error)
	CreateTimesheet(ctx context.Context, input models.TimesheetInput) (models.Timesheet, error)
	UpdateTimesheet(ctx context.Context, id int, input models.TimesheetInput) (models.Timesheet, error)
	DeleteTimesheet(ctx context.Context, id int) error
	FileURL(path string) string
}

// Client calls the backend REST service.
type Client struct {
	log            *slog.Logger
	metrics        *metrics.Metrics
	httpClient     *http.Client
	apiBaseURL     string
	storageBaseURL string
}

// New creates a backend client using the connection details from cfg.
func New(log *slog.Logger, mtr *metrics.Metrics, cfg config.BackendConfig) *Client {
	return &Client{
		log:            log,
		metrics:        mtr,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		apiBaseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		storageBaseURL: strings.TrimRight(cfg.StorageBaseURL, "/"),
	}
}

// FileURL resolves a relative attachment path returned by the API into a
// viewable link under the backend's static file root.
func (c *Client) FileURL(path string) string {
	if path == "" {
		return ""
	}
	return c.storageBaseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) ListEmployees(ctx context.Context, page int) (models.EmployeePage, error) {
	var result models.EmployeePage

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	err := c.do(ctx, "list_employees", http.MethodGet, c.apiBaseURL+"/employees?"+query.Encode(), nil, "", &result)
	if err != nil {
		return models.EmployeePage{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return result, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int) (models.Employee, error) {
	var result models.Employee

	err := c.do(ctx, "get_employee", http.MethodGet, c.employeeURL(id), nil, "", &result)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}

	return result, nil
}

// CreateEmployee submits a new employee as multipart form data, since the
// payload may carry file attachments.
func (c *Client) CreateEmployee(ctx context.Context, upload EmployeeUpload) (models.Employee, error) {
	var result models.Employee

	body, contentType, err := encodeMultipart(upload)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to encode employee payload: %w", err)
	}

	err = c.do(ctx, "create_employee", http.MethodPost, c.apiBaseURL+"/employees", body, contentType, &result)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// UpdateEmployee replaces an employee via the backend's method-override
// convention: a multipart POST to /employees/{id}?_method=PUT, because file
// payloads cannot ride on a plain PUT.
func (c *Client) UpdateEmployee(ctx context.Context, id int, upload EmployeeUpload) (models.Employee, error) {
	var result models.Employee

	body, contentType, err := encodeMultipart(upload)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to encode employee payload: %w", err)
	}

	err = c.do(ctx, "update_employee", http.MethodPost, c.employeeURL(id)+"?_method=PUT", body, contentType, &result)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", id, err)
	}

	return result, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	if err := c.do(ctx, "delete_employee", http.MethodDelete, c.employeeURL(id), nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return nil
}

// ListTimesheets fetches one page of timesheets scoped to the owning
// employee.
func (c *Client) ListTimesheets(ctx context.Context, employeeID, page int) (models.TimesheetPage, error) {
	var result models.TimesheetPage

	query := url.Values{}
	query.Set("employee_id", strconv.Itoa(employeeID))
	query.Set("page", strconv.Itoa(page))

	err := c.do(ctx, "list_timesheets", http.MethodGet, c.apiBaseURL+"/timesheets?"+query.Encode(), nil, "", &result)
	if err != nil {
		return models.TimesheetPage{}, fmt.Errorf("failed to list timesheets for employee %d: %w", employeeID, err)
	}

	return result, nil
}

func (c *Client) GetTimesheet(ctx context.Context, id int) (models.Timesheet, error) {
	var result models.Timesheet

	err := c.do(ctx, "get_timesheet", http.MethodGet, c.timesheetURL(id), nil, "", &result)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("failed to get timesheet %d: %w", id, err)
	}

	return result, nil
}

func (c *Client) CreateTimesheet(ctx context.Context, input models.TimesheetInput) (models.Timesheet, error) {
	var result models.Timesheet

	body, err := json.Marshal(input)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("failed to encode timesheet payload: %w", err)
	}

	err = c.do(ctx, "create_timesheet", http.MethodPost,
		c.apiBaseURL+"/timesheets", bytes.NewReader(body), "application/json", &result)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return result, nil
}

func (c *Client) UpdateTimesheet(ctx context.Context, id int, input models.TimesheetInput) (models.Timesheet, error) {
	var result models.Timesheet

	body, err := json.Marshal(input)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("failed to encode timesheet payload: %w", err)
	}

	err = c.do(ctx, "update_timesheet", http.MethodPut,
		c.timesheetURL(id), bytes.NewReader(body), "application/json", &result)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("failed to update timesheet %d: %w", id, err)
	}

	return result, nil
}

func (c *Client) DeleteTimesheet(ctx context.Context, id int) error {
	if err := c.do(ctx, "delete_timesheet", http.MethodDelete, c.timesheetURL(id), nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete timesheet %d: %w", id, err)
	}

	return nil
}

func (c *Client) employeeURL(id int) string {
	return c.apiBaseURL + "/employees/" + strconv.Itoa(id)
}

func (c *Client) timesheetURL(id int) string {
	return c.apiBaseURL + "/timesheets/" + strconv.Itoa(id)
}

// do executes one backend request and decodes the JSON response into out
// when out is non-nil. Non-2xx responses become an *APIError carrying the
// status and server-provided error body.
func (c *Client) do(ctx context.Context, operation, method, rawURL string,
	body io.Reader, contentType string, out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request %s %s: %w", method, rawURL, err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())

	if err != nil {
		c.metrics.BackendRequests.WithLabelValues(operation, "failure").Inc()
		return fmt.Errorf("failed to request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.metrics.BackendRequests.WithLabelValues(operation, "failure").Inc()
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.BackendRequests.WithLabelValues(operation, "failure").Inc()
		c.log.DebugContext(ctx, "Backend request failed",
			"operation", operation, "status", resp.StatusCode, "body", string(payload))

		return &APIError{StatusCode: resp.StatusCode, Body: string(payload)}
	}

	c.metrics.BackendRequests.WithLabelValues(operation, "success").Inc()

	if out != nil {
		if err = json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
		}
	}

	return nil
}
