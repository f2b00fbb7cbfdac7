package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

var validate = newValidator()

// newValidator reports field names by their json tag so error maps match the wire payload
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// errMissingID is returned when a by-id request carries no id
var errMissingID = errors.New("missing id")

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	message := "One or more fields failed validation"
	if len(ve) == 1 {
		message = formatValidationError(ve[0])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:    domain.ErrorTypeValidation,
		Title:   "Validation Error",
		Status:  http.StatusBadRequest,
		Message: message,
		Errors:  fields,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName lowercases the first character of a field name
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:    getErrorType(status),
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// respondServiceError maps service errors to status codes. Causes of 5xx
// responses are logged and never sent to the client.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, capitalize(strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")))
	default:
		logger.Error("failed to "+action, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// decodeJSON decodes the request body into target and runs struct validation.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := validate.Struct(target); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}

// parseID parses an id, returning errMissingID for an empty value
func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errMissingID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id format: %w", err)
	}
	return id, nil
}

// respondIDError answers a request whose id could not be parsed
func respondIDError(w http.ResponseWriter, err error, entity string) {
	if errors.Is(err, errMissingID) {
		respondWithError(w, http.StatusBadRequest, entity+" ID is required")
		return
	}
	respondWithError(w, http.StatusBadRequest, "Invalid "+strings.ToLower(entity)+" ID format")
}

// parseDateRange reads start_date and end_date. Either may be absent.
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	var dateRange domain.DateRange
	for _, p := range []struct {
		name   string
		target **domain.Date
	}{
		{"start_date", &dateRange.StartDate},
		{"end_date", &dateRange.EndDate},
	} {
		raw := strings.TrimSpace(r.URL.Query().Get(p.name))
		if raw == "" {
			continue
		}
		d, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid %s: %w", p.name, err)
		}
		*p.target = &d
	}
	return dateRange, nil
}
