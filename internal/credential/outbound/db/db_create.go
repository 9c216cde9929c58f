package db

import (
	"context"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
)

const queryCreateAPIKey = `
INSERT INTO api_keys (id, email, api_key, created_by, company_name)
VALUES ($1, $2, $3, $4, $5)
`

// CreateAPIKey inserts the credential row. The database's unique constraints
// are the final arbiter for both the email and the key; see mapError for how
// each violation surfaces.
func (s *DB) CreateAPIKey(ctx context.Context, in entity.APIKey) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAPIKey")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateAPIKey,
		in.ID,
		in.Email,
		in.Key,
		in.CreatedBy,
		in.CompanyName,
	)

	return s.mapError(err)
}
