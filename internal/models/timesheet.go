package models

// Timesheet is a time-interval record owned by exactly one employee.
// CreatedAt/UpdatedAt are server-maintained and read-only for the console.
type Timesheet struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Summary    string `json:"summary"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// TimesheetInput is the JSON body for timesheet create and update calls.
type TimesheetInput struct {
	EmployeeID int    `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Summary    string `json:"summary"`
}

// TimesheetPage is one server page of timesheets plus its cursor fields.
type TimesheetPage struct {
	Data        []Timesheet `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	Total       int         `json:"total"`
}

func (p TimesheetPage) Cursor() Pagination {
	return Pagination{CurrentPage: p.CurrentPage, LastPage: p.LastPage, Total: p.Total}
}
