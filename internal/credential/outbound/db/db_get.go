package db

import (
	"context"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
)

const queryGetAPIKeyByEmail = `
SELECT id, email, api_key, created_by, company_name, created_at
FROM api_keys
WHERE email = $1
`

func (s *DB) GetAPIKeyByEmail(ctx context.Context, email string) (_ *entity.APIKey, err error) {
	ctx, span := s.startSpan(ctx, "GetAPIKeyByEmail")
	defer func() { s.endSpan(span, err) }()

	var out entity.APIKey
	err = s.conn.QueryRow(ctx, queryGetAPIKeyByEmail, email).Scan(
		&out.ID,
		&out.Email,
		&out.Key,
		&out.CreatedBy,
		&out.CompanyName,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

const queryGetAPIKeyByKey = `
SELECT id, email, api_key, created_by, company_name, created_at
FROM api_keys
WHERE api_key = $1
`

func (s *DB) GetAPIKeyByKey(ctx context.Context, key string) (_ *entity.APIKey, err error) {
	ctx, span := s.startSpan(ctx, "GetAPIKeyByKey")
	defer func() { s.endSpan(span, err) }()

	var out entity.APIKey
	err = s.conn.QueryRow(ctx, queryGetAPIKeyByKey, key).Scan(
		&out.ID,
		&out.Email,
		&out.Key,
		&out.CreatedBy,
		&out.CompanyName,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}
