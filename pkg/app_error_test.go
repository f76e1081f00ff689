package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Success || body.Error != "An internal error occurred" || body.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.HTTPStatus != http.StatusBadRequest || simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
