package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/storage"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/utilities"
)

// InternalErrorResponse is the envelope for unexpected server failures
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func internalError(c *gin.Context, action string, err error) {
	c.JSON(http.StatusInternalServerError, InternalErrorResponse{
		Error:   fmt.Sprintf("Failed to %s", action),
		Message: err.Error(),
	})
}

// ListApplications fetches all application records that match query from the
// collection and returns them as a JSON response.
// @Summary List application records
// @Description Optionally narrow to one status and order by date
// @Tags Applications
// @Produce json
// @Param status query string false "Keep only records with this status (Applied, Interview, Offer, Rejected)"
// @Param sort query string false "Date ordering, asc or desc. Defaults to desc (newest first)"
// @Success 200 {array} model.Application "Matching application records"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /applications [get]
func (ac *ApplicationController) ListApplications(c *gin.Context) {
	rawStatus := c.Query("status")
	rawSort := c.Query("sort")

	apps, err := ac.Store.List(rawStatus, rawSort)
	if err != nil {
		internalError(c, "fetch applications", err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// GetApplication fetches a single application record by its ID.
// @Summary Get application record by ID
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application "Matching record"
// @Failure 404 {object} utilities.ErrorResponse "No record with that ID"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /applications/{id} [get]
func (ac *ApplicationController) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := ac.Store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		internalError(c, "fetch application", err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// CreateApplication handles the creation of a new application record.
// @Summary Create application record
// @Description Validates required fields and the status enumeration, assigns a fresh id
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body model.ApplicationInput true "Application information"
// @Success 201 {object} model.Application "Created record with assigned id"
// @Failure 400 {object} utilities.ValidationErrorResponse "Invalid request body or failing validation"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /applications [post]
func (ac *ApplicationController) CreateApplication(c *gin.Context) {
	input := model.ApplicationInput{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
			Errors: []string{fmt.Sprintf("Invalid request body: %s", err.Error())},
		})
		return
	}

	app, err := ac.Store.Create(input)
	if err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{Errors: vErr.Messages})
			return
		}
		internalError(c, "create application", err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// UpdateApplication replaces the record at the given ID wholesale.
// @Summary Replace application record
// @Description The path id wins over any id in the payload
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param application body model.ApplicationInput true "Replacement application information"
// @Success 200 {object} model.Application "Updated record"
// @Failure 400 {object} utilities.ValidationErrorResponse "Invalid request body or failing validation"
// @Failure 404 {object} utilities.ErrorResponse "No record with that ID"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /applications/{id} [put]
func (ac *ApplicationController) UpdateApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	input := model.ApplicationInput{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
			Errors: []string{fmt.Sprintf("Invalid request body: %s", err.Error())},
		})
		return
	}

	app, err := ac.Store.Update(id, input)
	if err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{Errors: vErr.Messages})
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		internalError(c, "update application", err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// DeleteApplication removes the record at the given ID.
// @Summary Delete application record
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} utilities.DeleteResponse "Record removed"
// @Failure 404 {object} utilities.ErrorResponse "No record with that ID"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /applications/{id} [delete]
func (ac *ApplicationController) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ac.Store.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		internalError(c, "delete application", err)
		return
	}

	c.JSON(http.StatusOK, utilities.DeleteResponse{Success: true, ID: id})
}

// GetStats computes aggregate counts over the whole collection.
// @Summary Get aggregate statistics
// @Description Total, per-status counts and the offer rate, always over the unfiltered collection
// @Tags Stats
// @Produce json
// @Success 200 {object} model.Stats "Aggregate statistics"
// @Failure 500 {object} controller.InternalErrorResponse "Store error"
// @Router /stats [get]
func (ac *ApplicationController) GetStats(c *gin.Context) {
	stats, err := ac.Store.Stats()
	if err != nil {
		internalError(c, "compute stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseID reads the :id path parameter. A non-numeric id cannot match any
// record, so it is reported the same way as an absent one.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
		return 0, false
	}
	return id, true
}
