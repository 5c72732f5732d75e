package handler

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/edvin/panelgate/internal/model"
)

// mockDB implements core.DB for testing handlers end to end through a
// real TenantService.
type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *mockDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

type mockRow struct {
	scanFunc func(dest ...any) error
}

func (m *mockRow) Scan(dest ...any) error {
	return m.scanFunc(dest...)
}

func scanTenantRow(t model.Tenant) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*string)) = t.ID
		*(dest[1].(*string)) = t.Subdomain
		*(dest[2].(**string)) = t.CustomDomain
		*(dest[3].(*string)) = t.BrandName
		*(dest[4].(**string)) = t.Logo
		*(dest[5].(**string)) = t.Favicon
		*(dest[6].(*string)) = t.Font
		*(dest[7].(*string)) = t.PrimaryColor
		*(dest[8].(*string)) = t.SecondaryColor
		*(dest[9].(*string)) = t.AccentColor
		*(dest[10].(*string)) = t.Status
		*(dest[11].(*time.Time)) = t.CreatedAt
		*(dest[12].(*time.Time)) = t.UpdatedAt
		return nil
	}
}
