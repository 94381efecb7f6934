package models

import "io"

// DiagnosticRequest is the input of the image/description analysis
type DiagnosticRequest struct {
	Description string
	Image       *DiagnosticImage
}

// DiagnosticImage is an optional photo attached to a diagnostic request
type DiagnosticImage struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Diagnosis is the analysis returned by the backend
type Diagnosis struct {
	Text string `json:"diagnostico"`
}
