// Package utilities contain utility code that use across the package
package utilities

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every validation message for a rejected payload
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse acknowledges a successful delete with the removed id
type DeleteResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

// RouteErrorResponse describes a request that matched no registered route
type RouteErrorResponse struct {
	Error  string `json:"error"`
	Path   string `json:"path"`
	Method string `json:"method"`
}
