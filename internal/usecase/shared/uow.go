package shared

import (
	"context"
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/review"
	"cosme-store/internal/domain/user"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Stock() StockRepository
	Products() ProductRepository
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	CheckoutKeys() CheckoutKeyRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

// CommandReads loads the aggregates a command needs to decide. Missing rows
// surface as infra.RepositoryError with KindNotFound.
type CommandReads interface {
	ProductByID(ctx context.Context, id string) (*product.Product, error)
	VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// DeliveredOrderWithProduct returns the newest delivered order of userID
	// that contains productID.
	DeliveredOrderWithProduct(ctx context.Context, userID uuid.UUID, productID string) (uuid.UUID, error)
	// CheckoutKey returns the stored key even when it has expired; callers
	// compare ExpiresAt themselves.
	CheckoutKey(ctx context.Context, userID, key uuid.UUID) (*CheckoutKey, error)
}

type StockRepository interface {
	LockVariant(ctx context.Context, tx pgsql.DBTX, productID, size string) (product.Variant, error)
	UpdateStock(ctx context.Context, tx pgsql.DBTX, productID, size string, qty int) error
}

type ProductRepository interface {
	Upsert(ctx context.Context, tx pgsql.DBTX, p *product.Product, now time.Time) error
}

type VoucherRepository interface {
	Redeem(ctx context.Context, tx pgsql.DBTX, code string) error
	Release(ctx context.Context, tx pgsql.DBTX, code string) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, o *order.Order) error
	FindForUpdate(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx pgsql.DBTX, o *order.Order) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx pgsql.DBTX, orderID uuid.UUID, eventType string, payload any, at time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID, at time.Time) error
	UpdateProfile(ctx context.Context, tx pgsql.DBTX, u *user.User) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx pgsql.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	Recalc(ctx context.Context, tx pgsql.DBTX, productID string) error
}

// CheckoutKey ties a client Idempotency-Key to the order it produced.
type CheckoutKey struct {
	UserID      uuid.UUID
	Key         uuid.UUID
	RequestHash string
	OrderID     uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type CheckoutKeyRepository interface {
	// Record fails with KindDuplicateKey while an unexpired entry holds the key.
	Record(ctx context.Context, tx pgsql.DBTX, k CheckoutKey) error
}
