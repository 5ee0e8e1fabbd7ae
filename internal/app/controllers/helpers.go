// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + name + ": must be a positive number")
	}
	return id, nil
}

// formError turns a binding failure into a validation error carrying the
// first field message, for display on HTML forms.
func formError(err error) error {
	detail := dto.HandleValidationError(err)
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, detail.Message)
}
