package order

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "ux_orders_user_date"}
	if !isUniqueViolation(dup) {
		t.Errorf("expected code 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("creating order: %w", dup)) {
		t.Errorf("expected wrapped unique violation to be detected")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Errorf("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("connection reset")) {
		t.Errorf("plain error is not a unique violation")
	}
}
