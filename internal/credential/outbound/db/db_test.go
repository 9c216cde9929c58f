package db

import (
	"errors"
	"testing"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestMapError(t *testing.T) {
	s := &DB{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			in:   pgx.ErrNoRows,
			want: goerror.ErrNotFound,
		},
		{
			name: "unique violation on key column becomes key collision",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "api_keys_api_key_key"},
			want: entity.ErrKeyCollision,
		},
		{
			name: "unique violation on email column becomes conflict",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "api_keys_email_key"},
			want: goerror.ErrConflict,
		},
		{
			name: "connection failure becomes unavailable",
			in:   &pgconn.PgError{Code: "08006"},
			want: goerror.ErrUnavailable,
		},
		{
			name: "network error becomes unavailable",
			in:   timeoutError{},
			want: goerror.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.mapError(tt.in)
			if !errors.Is(got, tt.want) {
				t.Fatalf("mapError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_UnknownErrorPassesThrough(t *testing.T) {
	s := &DB{}

	in := errors.New("syntax error at or near")
	if got := s.mapError(in); !errors.Is(got, in) {
		t.Fatalf("mapError(%v) = %v, want the error unchanged", in, got)
	}
}
