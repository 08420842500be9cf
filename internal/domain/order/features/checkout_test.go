//go:build unit

package features

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var now = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type checkoutContext struct {
	ledger       *cart.Ledger
	vouchers     map[string]*voucher.Voucher
	shippingCost int64
	applied      voucher.Applied
	pricing      order.Pricing
	order        *order.Order
	err          error
}

func (c *checkoutContext) reset() {
	c.ledger = cart.NewLedger()
	c.vouchers = map[string]*voucher.Voucher{}
	c.shippingCost = 30000
	c.applied = voucher.Applied{}
	c.pricing = order.Pricing{}
	c.order = nil
	c.err = nil
}

func (c *checkoutContext) anEmptyCart() error {
	c.ledger = cart.NewLedger()
	return nil
}

func (c *checkoutContext) iAddOfProductVariantPriced(qty int, productID, size string, price int64) error {
	_, err := c.ledger.AddLine(productID, size, qty, cart.Snapshot{Name: productID, UnitPrice: price}, now)
	return err
}

func (c *checkoutContext) theCartHasItemsTotalling(items int, amount int64) error {
	got := c.ledger.Totals()
	if got.TotalItems != items || got.TotalAmount != amount {
		return fmt.Errorf("expected %d items / %d, got %d / %d", items, amount, got.TotalItems, got.TotalAmount)
	}
	return nil
}

func (c *checkoutContext) aProductVoucherOfPercentWithMinimumOrder(code string, pct, minOrder int64) error {
	return c.addVoucher(voucher.Params{
		Code:          code,
		Type:          voucher.TypeProduct,
		DiscountType:  voucher.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(pct),
		MinOrder:      minOrder,
	})
}

func (c *checkoutContext) aShippingVoucherOfFixed(code string, value int64) error {
	return c.addVoucher(voucher.Params{
		Code:          code,
		Type:          voucher.TypeShipping,
		DiscountType:  voucher.DiscountFixed,
		DiscountValue: decimal.NewFromInt(value),
	})
}

func (c *checkoutContext) addVoucher(p voucher.Params) error {
	p.StartDate = now.AddDate(0, -1, 0)
	p.EndDate = now.AddDate(0, 1, 0)
	p.Status = voucher.StatusActive
	v, err := voucher.New(p)
	if err != nil {
		return err
	}
	c.vouchers[v.Code()] = v
	return nil
}

func (c *checkoutContext) theShippingCostIs(cost int64) error {
	c.shippingCost = cost
	return nil
}

func (c *checkoutContext) iApplyVoucherToAnOrderOf(code string, amount int64) error {
	v := c.vouchers[voucher.NormalizeCode(code)]
	category := voucher.TypeProduct
	if v != nil {
		category = v.Type()
	}
	var slots voucher.Slots
	c.applied, c.err = voucher.Apply(&slots, category, code, v, voucher.Context{
		OrderAmount:  amount,
		ShippingCost: c.shippingCost,
		Now:          now,
	})
	return nil
}

func (c *checkoutContext) theVoucherIsValid() error {
	return c.err
}

func (c *checkoutContext) theDiscountIs(amount int64) error {
	if c.applied.Discount != amount {
		return fmt.Errorf("expected discount %d, got %d", amount, c.applied.Discount)
	}
	return nil
}

func (c *checkoutContext) iPriceACheckout(subtotal, productDiscount, shippingDiscount int64) error {
	c.pricing = order.ComputePricing(subtotal, productDiscount, shippingDiscount, c.shippingCost)
	return nil
}

func (c *checkoutContext) theOrderTotalIs(total int64) error {
	if c.pricing.TotalAmount != total {
		return fmt.Errorf("expected total %d, got %d", total, c.pricing.TotalAmount)
	}
	return nil
}

func (c *checkoutContext) anOrderWithStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.order = order.Reconstruct(uuid.New(), order.Params{
		UserID:  uuid.New(),
		Items:   []order.Item{{ProductID: "X", VariantSize: "50ml", UnitPrice: 100000, Quantity: 1}},
		Pricing: order.ComputePricing(100000, 0, 0, c.shippingCost),
		Payment: order.Payment{Method: order.PaymentCOD},
	}, s, now, now)
	return nil
}

func (c *checkoutContext) iCancelTheOrder() error {
	c.err = c.order.Cancel(now.Add(time.Minute))
	return nil
}

func (c *checkoutContext) theCancellationFailsWithAStateConflict() error {
	if !errors.Is(c.err, order.ErrNotCancellable) {
		return fmt.Errorf("expected ErrNotCancellable, got %v", c.err)
	}
	return nil
}

func (c *checkoutContext) theOrderStatusIs(status string) error {
	if c.order.Status().String() != status {
		return fmt.Errorf("expected status %s, got %s", status, c.order.Status())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a product voucher "([^"]*)" of (\d+) percent with minimum order (\d+)$`, tc.aProductVoucherOfPercentWithMinimumOrder)
	ctx.Step(`^a shipping voucher "([^"]*)" of (\d+) fixed$`, tc.aShippingVoucherOfFixed)
	ctx.Step(`^the shipping cost is (\d+)$`, tc.theShippingCostIs)
	ctx.Step(`^an order with status "([^"]*)"$`, tc.anOrderWithStatus)

	// When steps
	ctx.Step(`^I add (\d+) of product "([^"]*)" variant "([^"]*)" priced (\d+)$`, tc.iAddOfProductVariantPriced)
	ctx.Step(`^I apply voucher "([^"]*)" to an order of (\d+)$`, tc.iApplyVoucherToAnOrderOf)
	ctx.Step(`^I price a checkout of (\d+) with product discount (\d+) and shipping discount (\d+)$`, tc.iPriceACheckout)
	ctx.Step(`^I cancel the order$`, tc.iCancelTheOrder)

	// Then steps
	ctx.Step(`^the cart has (\d+) items totalling (\d+)$`, tc.theCartHasItemsTotalling)
	ctx.Step(`^the voucher is valid$`, tc.theVoucherIsValid)
	ctx.Step(`^the discount is (\d+)$`, tc.theDiscountIs)
	ctx.Step(`^the order total is (\d+)$`, tc.theOrderTotalIs)
	ctx.Step(`^the cancellation fails with a state conflict$`, tc.theCancellationFailsWithAStateConflict)
	ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"checkout.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
