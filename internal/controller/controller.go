// Package controller provides HTTP handlers for the application tracker API.
package controller

import "github.com/jiyaaggarwal267-maker/career-tracker/internal/storage"

// ApplicationController handles application record related endpoints
type ApplicationController struct {
	Store *storage.Store
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided collection store.
func NewApplicationController(store *storage.Store) *ApplicationController {
	return &ApplicationController{
		Store: store,
	}
}
