// Package handlers implements the HTTP-to-store adapter. Handlers own no
// state: every endpoint validates input, calls the store and maps the result
// to an HTTP response.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  []ValidationIssue `json:"errors,omitempty"`
}

// ValidationIssue describes a single field-level validation failure.
type ValidationIssue struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

func init() {
	// Report JSON field names in validation issues instead of Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingIssues converts a gin binding error into field-level issues.
func bindingIssues(err error) []ValidationIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, ValidationIssue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: issueMessage(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationIssue{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}
	}

	return []ValidationIssue{{Message: "request body is not valid JSON"}}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// respondStoreError maps store-layer errors to HTTP status codes. Unknown
// failures are logged and surfaced as a generic 500 with no internal detail.
func respondStoreError(c *gin.Context, err error, entity, failMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: entity + " not found"})
		return
	}
	slog.Error("unhandled store error", "entity", entity, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: failMsg})
}
