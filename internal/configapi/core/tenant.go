package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edvin/panelgate/internal/configapi/request"
	"github.com/edvin/panelgate/internal/model"
)

// ErrNotFound is returned when no tenant matches the lookup key.
var ErrNotFound = errors.New("tenant not found")

const tenantColumns = `id, subdomain, custom_domain, brand_name, logo, favicon, font,
	 primary_color, secondary_color, accent_color, status, created_at, updated_at`

type TenantService struct {
	db DB
}

func NewTenantService(db DB) *TenantService {
	return &TenantService{db: db}
}

func (s *TenantService) Create(ctx context.Context, tenant *model.Tenant) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO tenants (id, subdomain, custom_domain, brand_name, logo, favicon, font, primary_color, secondary_color, accent_color, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		tenant.ID, tenant.Subdomain, tenant.CustomDomain, tenant.BrandName, tenant.Logo,
		tenant.Favicon, tenant.Font, tenant.PrimaryColor, tenant.SecondaryColor,
		tenant.AccentColor, tenant.Status, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*model.Tenant, error) {
	return s.getBy(ctx, "id = $1", id)
}

// GetBySubdomain returns the active tenant reserved on the given subdomain.
// Suspended tenants resolve as not found so their panel disappears without
// releasing the subdomain.
func (s *TenantService) GetBySubdomain(ctx context.Context, subdomain string) (*model.Tenant, error) {
	return s.getBy(ctx, "subdomain = $1 AND status = 'active'", subdomain)
}

// GetByDomain returns the active tenant mapped to the given custom domain.
func (s *TenantService) GetByDomain(ctx context.Context, domain string) (*model.Tenant, error) {
	return s.getBy(ctx, "custom_domain = $1 AND status = 'active'", domain)
}

func (s *TenantService) getBy(ctx context.Context, where string, arg any) (*model.Tenant, error) {
	var t model.Tenant
	err := s.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE `+where, arg,
	).Scan(&t.ID, &t.Subdomain, &t.CustomDomain, &t.BrandName, &t.Logo, &t.Favicon,
		&t.Font, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor, &t.Status,
		&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

func (s *TenantService) List(ctx context.Context, params request.ListParams) ([]model.Tenant, bool, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE true`
	args := []any{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(` AND (subdomain ILIKE $%d OR brand_name ILIKE $%d OR custom_domain ILIKE $%d)`, argIdx, argIdx, argIdx)
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, params.Status)
		argIdx++
	}
	if params.Cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, params.Cursor)
		argIdx++
	}

	sortCol := "created_at"
	switch params.Sort {
	case "subdomain":
		sortCol = "subdomain"
	case "brand_name":
		sortCol = "brand_name"
	case "status":
		sortCol = "status"
	case "created_at":
		sortCol = "created_at"
	}
	order := "DESC"
	if params.Order == "asc" {
		order = "ASC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, sortCol, order)
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, params.Limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []model.Tenant
	for rows.Next() {
		var t model.Tenant
		if err := rows.Scan(&t.ID, &t.Subdomain, &t.CustomDomain, &t.BrandName, &t.Logo,
			&t.Favicon, &t.Font, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate tenants: %w", err)
	}

	hasMore := len(tenants) > params.Limit
	if hasMore {
		tenants = tenants[:params.Limit]
	}
	return tenants, hasMore, nil
}

func (s *TenantService) Update(ctx context.Context, tenant *model.Tenant) error {
	_, err := s.db.Exec(ctx,
		`UPDATE tenants SET subdomain = $1, custom_domain = $2, brand_name = $3, logo = $4,
		 favicon = $5, font = $6, primary_color = $7, secondary_color = $8, accent_color = $9,
		 status = $10, updated_at = now()
		 WHERE id = $11`,
		tenant.Subdomain, tenant.CustomDomain, tenant.BrandName, tenant.Logo, tenant.Favicon,
		tenant.Font, tenant.PrimaryColor, tenant.SecondaryColor, tenant.AccentColor,
		tenant.Status, tenant.ID,
	)
	if err != nil {
		return fmt.Errorf("update tenant %s: %w", tenant.ID, err)
	}
	return nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx,
		"DELETE FROM tenants WHERE id = $1", id,
	)
	if err != nil {
		return fmt.Errorf("delete tenant %s: %w", id, err)
	}
	return nil
}
