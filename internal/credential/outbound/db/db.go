package db

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

// - 23505 unique violation on the key column → entity.ErrKeyCollision (caller regenerates)
// - 23505 unique violation otherwise → goerror.ErrConflict (email already has a key)
// - class 08 connection errors → goerror.ErrUnavailable
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			// api_keys_email_key shares the api_key prefix, so the
			// constraint name must match exactly.
			if pgErr.ConstraintName == "api_keys_api_key_key" {
				return entity.ErrKeyCollision
			}
			return goerror.ErrConflict
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			return goerror.ErrUnavailable
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return goerror.ErrUnavailable
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil &&
		!errors.Is(err, goerror.ErrNotFound) &&
		!errors.Is(err, goerror.ErrConflict) &&
		!errors.Is(err, entity.ErrKeyCollision) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
