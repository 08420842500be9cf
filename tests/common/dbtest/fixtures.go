//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cosme-store/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every user created by CreateTestUser.
const DefaultPassword = "password123"

// DBLike is the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce     sync.Once
	passwordHash string
)

func defaultHash(t *testing.T) string {
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = h
	})
	return passwordHash
}

// CreateTestUser inserts an active user with DefaultPassword. An existing
// email keeps its row and id.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, display_name)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultHash(t), role, strings.Split(email, "@")[0])
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// SeedCatalog inserts the products and vouchers the storefront flows use.
//
//	p-serum  30ml 250000 (stock 5), 50ml 380000 (stock 2)
//	p-toner  150ml 120000 (stock 10)
//	GLOW10   10% product voucher, min order 300000
//	FREESHIP fixed 30000 shipping voucher, one use left
func SeedCatalog(t *testing.T, db DBLike) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO products (id, name, category, image) VALUES
			('p-serum', 'Vitamin C Serum', 'skincare', 'serum.png'),
			('p-toner', 'Hydrating Toner', 'skincare', 'toner.png')`, nil},
		{`INSERT INTO product_variants (product_id, position, size, price, stock_qty) VALUES
			('p-serum', 0, '30ml', 250000, 5),
			('p-serum', 1, '50ml', 380000, 2),
			('p-toner', 0, '150ml', 120000, 10)`, nil},
		{`INSERT INTO vouchers (id, code, type, discount_type, discount_value, min_order, start_date, end_date, usage_limit, usage_count)
			VALUES ($1, 'GLOW10', 'product', 'percentage', 10, 300000, $3, $4, NULL, 0),
			       ($2, 'FREESHIP', 'shipping', 'fixed', 30000, 0, $3, $4, 1, 0)`,
			[]any{uuid.New(), uuid.New(), now.Add(-24 * time.Hour), now.Add(30 * 24 * time.Hour)}},
	}
	for _, s := range stmts {
		_, err := db.Exec(ctx, s.sql, s.args...)
		require.NoError(t, err)
	}
}

// StockOf reads the current stock of one variant.
func StockOf(t *testing.T, db DBLike, productID, size string) int {
	t.Helper()
	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT stock_qty FROM product_variants WHERE product_id = $1 AND size = $2", productID, size).Scan(&qty)
	require.NoError(t, err)
	return qty
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table. The goose version table is kept
// so the schema is not migrated again.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
