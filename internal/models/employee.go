package models

// Employee represents an employee record as returned by the backend API.
// Date fields are carried in the backend's wire form (RFC3339 or plain
// YYYY-MM-DD); an empty string means the backend sent null.
type Employee struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	DateOfBirth string   `json:"date_of_birth"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	JobTitle    string   `json:"job_title"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	Photo       string   `json:"photo"`
	Documents   []string `json:"documents"`
	Identities  []string `json:"identities"`
}

// EmployeePage is one server page of employees plus its cursor fields.
type EmployeePage struct {
	Data        []Employee `json:"data"`
	CurrentPage int        `json:"current_page"`
	LastPage    int        `json:"last_page"`
	Total       int        `json:"total"`
}

// Pagination is the ephemeral cursor a list view keeps between fetches.
// It is never persisted and is recomputed from every list response.
type Pagination struct {
	CurrentPage int
	LastPage    int
	Total       int
}

func (p EmployeePage) Cursor() Pagination {
	return Pagination{CurrentPage: p.CurrentPage, LastPage: p.LastPage, Total: p.Total}
}
