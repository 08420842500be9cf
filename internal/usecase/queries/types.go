package queries

import (
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"

	"github.com/google/uuid"
)

type VariantView struct {
	Size     string `json:"size"`
	Price    int64  `json:"price"`
	StockQty int    `json:"stockQty"`
	InStock  bool   `json:"inStock"`
}

type ProductView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	PriceFrom   int64         `json:"priceFrom"`
	Variants    []VariantView `json:"variants"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type VoucherView struct {
	Code          string               `json:"code"`
	Type          voucher.Type         `json:"type"`
	DiscountType  voucher.DiscountType `json:"discountType"`
	DiscountValue string               `json:"discountValue"`
	MinOrder      int64                `json:"minOrder"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	Remaining     *int                 `json:"remaining,omitempty"`
	Description   string               `json:"description,omitempty"`
}

type OrderView struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"userId"`
	Items           []order.Item          `json:"items"`
	Pricing         order.Pricing         `json:"pricing"`
	Payment         order.Payment         `json:"payment"`
	Status          string                `json:"status"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Vouchers        []voucher.Applied     `json:"vouchers"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"itemCount"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	Phone       string    `json:"phone,omitempty"`
	IsActive    bool      `json:"isActive"`
}

type ReviewListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Rating      int32     `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductRatingStats struct {
	ProductID     string    `json:"productId"`
	TotalReviews  int32     `json:"totalReviews"`
	AverageRating float64   `json:"averageRating"`
	Rating1Count  int32     `json:"rating1Count"`
	Rating2Count  int32     `json:"rating2Count"`
	Rating3Count  int32     `json:"rating3Count"`
	Rating4Count  int32     `json:"rating4Count"`
	Rating5Count  int32     `json:"rating5Count"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}
