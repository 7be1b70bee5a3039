package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRate checks a percentage that must be defined, such as an
// occupancy rate over a portfolio with units.
func AssertRate(t *testing.T, got *float64, want float64) {
	t.Helper()

	if got == nil {
		t.Errorf("expected rate %.1f, got nil", want)
		return
	}
	if *got != want {
		t.Errorf("expected rate %.1f, got %.1f", want, *got)
	}
}

// AssertNoRate checks that a percentage is undefined.
func AssertNoRate(t *testing.T, got *float64) {
	t.Helper()

	if got != nil {
		t.Errorf("expected no rate, got %.1f", *got)
	}
}

// CountActivities returns the number of feed entries of the given kind.
func CountActivities(t *testing.T, db *gorm.DB, kind models.ActivityKind) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Activity{}).Where("kind = ?", kind).Count(&count).Error; err != nil {
		t.Fatalf("failed to count activities: %v", err)
	}
	return count
}
