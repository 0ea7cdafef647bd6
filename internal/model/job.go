package model

import "time"

// Job is a posting on the careers page.
type Job struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Application is a candidate's submission against a job posting. The resume
// lives at an externally hosted URL.
type Application struct {
	ID        uint64    `json:"id"`
	JobID     uint64    `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ResumeURL string    `json:"resume_url"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
