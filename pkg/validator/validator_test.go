package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type sampleRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required,max=10"`
}

func TestCustomValidator_ValidateReturnsValidationError(t *testing.T) {
	cv := New()

	// Both fields empty to trigger validation errors.
	err := cv.Validate(sampleRequest{})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if _, exists := ve.Errors["to"]; !exists {
		t.Errorf("expected 'to' to be in validation errors")
	}
	if _, exists := ve.Errors["body"]; !exists {
		t.Errorf("expected 'body' to be in validation errors")
	}
}

func TestCustomValidator_UsesJSONFieldNames(t *testing.T) {
	cv := New()

	err := cv.Validate(sampleRequest{To: "1", Body: "way too long for the tag"})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	// Struct field is Body; the reported key must be the json tag.
	if _, exists := ve.Errors["body"]; !exists {
		t.Errorf("expected json tag name 'body' in errors, got %v", ve.Errors)
	}
	if _, exists := ve.Errors["Body"]; exists {
		t.Errorf("struct field name must not leak into errors")
	}
}

func TestHandleValidationError_Returns422WithDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	c := e.NewContext(req, rec)

	cv := New()
	err := cv.Validate(sampleRequest{})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	if err := HandleValidationError(c, err); err != nil {
		t.Fatalf("HandleValidationError returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Success {
		t.Errorf("expected Success=false, got true")
	}
	if body.Error != "Validation failed" {
		t.Errorf("expected Error=%q, got %q", "Validation failed", body.Error)
	}
	if len(body.Details) == 0 {
		t.Errorf("expected Details to contain field errors")
	}
}
