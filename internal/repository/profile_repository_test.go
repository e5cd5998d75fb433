package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
)

func TestNotFoundOnInvalidID(t *testing.T) {
	malformed := fmt.Errorf("scan: %w", &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "not-a-uuid"`})
	if !errors.Is(notFoundOnInvalidID(malformed), pgx.ErrNoRows) {
		t.Fatalf("malformed id should read as a missing row")
	}

	unavailable := &pgconn.PgError{Code: "57P01"}
	if got := notFoundOnInvalidID(unavailable); got != error(unavailable) {
		t.Fatalf("other database errors must pass through, got %v", got)
	}

	plain := errors.New("connection reset")
	if got := notFoundOnInvalidID(plain); got != plain {
		t.Fatalf("non-postgres errors must pass through, got %v", got)
	}
}

func TestColumnValue(t *testing.T) {
	if got := columnValue(domain.SystemRoleAdmin); got != "admin" {
		t.Fatalf("system role should encode as string, got %#v", got)
	}
	var nilList []string
	if got, ok := columnValue(nilList).([]string); !ok || got == nil {
		t.Fatalf("nil list should encode as empty, got %#v", got)
	}
}
