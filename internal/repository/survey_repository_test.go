package repository

import (
	"database/sql"
	"errors"
	"testing"
)

func TestNullableFloat(t *testing.T) {
	if got := nullableFloat(sql.NullFloat64{}); got != nil {
		t.Errorf("NULL aggregate should map to nil, got %v", *got)
	}
	if got := nullableFloat(sql.NullFloat64{Valid: true, Float64: 3.4}); got == nil || *got != 3.4 {
		t.Errorf("valid aggregate lost: got %v", got)
	}
	// Zero is a real value, distinct from absence.
	if got := nullableFloat(sql.NullFloat64{Valid: true, Float64: 0}); got == nil || *got != 0 {
		t.Errorf("valid zero should survive as a pointer, got %v", got)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !isDuplicateKey(errors.New("Error 1062 (23000): Duplicate entry 'x' for key 'users.email'")) {
		t.Error("mysql duplicate-key error not recognized")
	}
	if isDuplicateKey(errors.New("Error 1146 (42S02): Table 'db.missing' doesn't exist")) {
		t.Error("unrelated mysql error misclassified as duplicate")
	}
	if isDuplicateKey(nil) {
		t.Error("nil error misclassified as duplicate")
	}
}
