package server

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/staffdesk/staffdesk/internal/client"
	"github.com/staffdesk/staffdesk/internal/lib/logger/sl"
	"github.com/staffdesk/staffdesk/internal/metrics"
)

//go:embed templates/employees.html templates/employee_form.html templates/employee_details.html templates/timesheet_details.html templates/employee_form_fields.html
var templatesFS embed.FS

// Server is the console's HTTP surface: it maps view paths onto the view
// controllers and renders their state as HTML pages.
type Server struct {
	log        *slog.Logger
	api        client.BackendIface
	metrics    *metrics.Metrics
	backendURL string

	listTmpl      *template.Template
	formTmpl      *template.Template
	detailsTmpl   *template.Template
	timesheetTmpl *template.Template
}

// New wires the console server. backendURL is probed by the health check.
func New(log *slog.Logger, api client.BackendIface, mtr *metrics.Metrics, backendURL string) *Server {
	return &Server{
		log:        log,
		api:        api,
		metrics:    mtr,
		backendURL: backendURL,
		listTmpl: template.Must(template.ParseFS(templatesFS,
			"templates/employees.html", "templates/employee_form_fields.html")),
		formTmpl: template.Must(template.ParseFS(templatesFS,
			"templates/employee_form.html", "templates/employee_form_fields.html")),
		detailsTmpl: template.Must(template.ParseFS(templatesFS,
			"templates/employee_details.html", "templates/employee_form_fields.html")),
		timesheetTmpl: template.Must(template.ParseFS(templatesFS,
			"templates/timesheet_details.html")),
	}
}

// Routes maps URL paths to the view controllers.
func (s *Server) Routes(reg *prometheus.Registry) chi.Router {
	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(Logger(s.log))

	router.Get("/", s.handleEmployeeList)
	router.Get("/employees", s.handleEmployeeList)
	router.Get("/employees/new", s.handleEmployeeFormPage)
	router.Post("/employees", s.handleEmployeeSubmit)
	router.Get("/employees/details/{id}", s.handleEmployeeDetails)
	router.Get("/employees/{id}", s.handleEmployeeFormPage)
	router.Post("/employees/{id}", s.handleEmployeeSubmit)
	router.Post("/employees/{id}/delete", s.handleEmployeeDelete)
	router.Post("/employees/{id}/timesheets", s.handleTimesheetSave)
	router.Post("/timesheets/{id}/delete", s.handleTimesheetDelete)
	router.Get("/timesheet/{timesheetId}", s.handleTimesheetDetails)
	router.Post("/timesheet/{timesheetId}", s.handleTimesheetUpdate)

	router.Method(http.MethodGet, "/healthz", NewHealthChecker(s.backendURL, s.log))
	router.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return router
}

// render executes the template into a buffer first so a render failure never
// produces a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request,
	tmpl *template.Template, page string, status int, data any,
) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to render template", "page", page, sl.Err(err))
		http.Error(w, "template render failed", http.StatusInternalServerError)
		return
	}

	s.metrics.PagesRendered.WithLabelValues(page).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func urlParamInt(r *http.Request, name string) int {
	value, _ := strconv.Atoi(chi.URLParam(r, name))
	return value
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func formInt(r *http.Request, name string) int {
	value, _ := strconv.Atoi(r.FormValue(name))
	return value
}

// readUploads drains the files posted under one multipart field into
// in-memory uploads.
func readUploads(form *multipart.Form, field string) ([]client.FileUpload, error) {
	headers := form.File[field]
	uploads := make([]client.FileUpload, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}

		uploads = append(uploads, client.FileUpload{Name: header.Filename, Content: content})
	}

	return uploads, nil
}
