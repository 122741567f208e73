package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppError(t *testing.T) {
	notFound := NewNotFoundError("Merchant")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	if got := GetAppError(wrapped); got != notFound {
		t.Errorf("GetAppError(wrapped) = %v, want %v", got, notFound)
	}
	if got := GetAppError(errors.New("connection refused")); got != ErrInternalServer {
		t.Errorf("GetAppError(plain) = %v, want ErrInternalServer", got)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError(wrapped) = false, want true")
	}
}

func TestNewInvalidParamError(t *testing.T) {
	err := NewInvalidParamError("quantity", "must be a positive integer")
	if err.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", err.Code, http.StatusBadRequest)
	}
	if len(err.Errors) != 1 || err.Errors[0].Field != "quantity" {
		t.Errorf("Errors = %+v, want one quantity error", err.Errors)
	}
}
