//go:build e2e

package shop_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"testing"

	"cosme-store/internal/domain/user"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/usecase/queries"
	"cosme-store/tests/common/authtest"
	"cosme-store/tests/common/dbtest"
	"cosme-store/tests/common/httptest"
	"cosme-store/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	serum30 = "p-serum|30ml"
	serum50 = "p-serum|50ml"
	toner   = "p-toner|150ml"
)

type shopSuite struct {
	e2e.SharedSuite
	customer authtest.Session
	admin    authtest.Session
}

func TestShopSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(shopSuite))
}

func (s *shopSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.SeedCatalog(s.T(), s.DB)
	s.customer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "lan@example.com", string(user.RoleCustomer))
	s.admin = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *shopSuite) do(method, path string, body any, session authtest.Session) *resdto.CartResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, method, path, body, session.AccessToken)
	var cart resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cart)
	return &cart
}

func (s *shopSuite) addItem(productID, size string, qty int) *resdto.CartResponse {
	return s.do(http.MethodPost, "/api/cart/items",
		map[string]any{"productId": productID, "variantSize": size, "quantity": qty}, s.customer)
}

func (s *shopSuite) selectLines(ids ...string) *resdto.CartResponse {
	return s.do(http.MethodPut, "/api/cart/selection", map[string]any{"lineIds": ids}, s.customer)
}

func (s *shopSuite) applyVoucher(kind, code string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/vouchers",
		map[string]any{"type": kind, "code": code}, s.customer.AccessToken)
}

func checkoutBody() map[string]any {
	return map[string]any{
		"shippingAddress": map[string]any{
			"recipientName": "Lan Anh",
			"phone":         "0901234567",
			"street":        "12 Nguyen Hue",
			"provinceCode":  "79",
			"districtCode":  "760",
			"wardCode":      "26734",
		},
		"paymentMethod": "cod",
	}
}

func (s *shopSuite) checkout() resdto.CheckoutResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout", checkoutBody(), s.customer.AccessToken)
	var res resdto.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *shopSuite) advance(orderID, status string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/admin/orders/"+orderID+"/status",
		map[string]any{"status": status}, s.admin.AccessToken)
	return w.Code
}

func (s *shopSuite) TestCatalog() {
	s.Run("products and vouchers are public", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/products?category=skincare", nil, "")
		var products []queries.ProductView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &products)
		s.Len(products, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/products/p-serum", nil, "")
		var serum queries.ProductView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &serum)
		s.Equal(int64(250_000), serum.PriceFrom)
		s.Len(serum.Variants, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers", nil, "")
		var vouchers []queries.VoucherView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vouchers)
		s.Len(vouchers, 2)
	})

	s.Run("admin import adds a product with legacy variant keys", func() {
		payload := map[string]any{"products": []map[string]any{{
			"id": "p-mask", "name": "Clay Mask", "category": "skincare",
			"variants": []map[string]any{{"name": "100g", "price": 180_000, "stockQty": 7}},
		}}}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/products/import", payload, s.admin.AccessToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.Equal(7, dbtest.StockOf(s.T(), s.DB, "p-mask", "100g"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/products/import", payload, s.customer.AccessToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("geography lookups go through the upstream client", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/geo/provinces/79/districts", nil, "")
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/geo/provinces/1/districts", nil, "")
		s.Equal(http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *shopSuite) TestCart() {
	s.Run("lines merge and only selected lines are priced", func() {
		s.addItem("p-serum", "30ml", 1)
		s.addItem("p-toner", "150ml", 1)
		cart := s.addItem("p-serum", "30ml", 1)
		s.Len(cart.Items, 2)
		s.Equal(3, cart.Totals.TotalItems)
		s.Zero(cart.SelectedTotals.TotalAmount)

		cart = s.selectLines(serum30)
		s.Equal(int64(500_000), cart.SelectedTotals.TotalAmount)
		s.Equal(int64(500_000), cart.Pricing.ItemsSubtotal)
	})

	s.Run("adding beyond stock is refused", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/items",
			map[string]any{"productId": "p-serum", "variantSize": "50ml", "quantity": 3}, s.customer.AccessToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("line routes accept the escaped line id", func() {
		s.addItem("p-serum", "50ml", 1)
		cart := s.do(http.MethodPatch, "/api/cart/items/"+url.PathEscape(serum50), map[string]any{"quantity": 2}, s.customer)
		s.Equal(2, cart.Items[0].Quantity)

		cart = s.do(http.MethodDelete, "/api/cart/items/"+url.PathEscape(serum50), nil, s.customer)
		s.Empty(cart.Items)
	})

	s.Run("cart survives a new login", func() {
		s.addItem("p-toner", "150ml", 2)
		again := authtest.LoginUser(s.T(), s.Router, "lan@example.com", dbtest.DefaultPassword)
		cart := s.do(http.MethodGet, "/api/cart", nil, again)
		s.Require().Len(cart.Items, 1)
		s.Equal(toner, cart.Items[0].LineID)
	})
}

func (s *shopSuite) TestVouchers() {
	s.Run("product voucher needs the minimum order", func() {
		s.addItem("p-toner", "150ml", 1)
		s.selectLines(toner)

		w := s.applyVoucher("product", "GLOW10")
		detail := httptest.AssertVoucherRefusal(s.T(), w, "below_minimum")
		s.Equal("GLOW10", detail.Code)
		s.Positive(detail.MinOrder)
	})

	s.Run("vouchers discount the selected lines and drop when selection shrinks", func() {
		s.addItem("p-serum", "30ml", 2)
		s.selectLines(serum30)

		w := s.applyVoucher("product", "glow10")
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cart)
		s.Equal(int64(50_000), cart.Pricing.ProductDiscount)

		w = s.applyVoucher("shipping", "FREESHIP")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cart)
		s.Equal(int64(30_000), cart.Pricing.ShippingDiscount)
		s.Equal(int64(450_000), cart.Pricing.TotalAmount)
		s.Len(cart.Vouchers, 2)

		after := s.do(http.MethodPost, "/api/cart/selection/deselect-all", nil, s.customer)
		s.Require().Len(after.InvalidatedVouchers, 1)
		s.Equal("GLOW10", after.InvalidatedVouchers[0].Code)
		s.Len(after.Vouchers, 1)
	})

	s.Run("unknown code", func() {
		w := s.applyVoucher("product", "NOPE")
		s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *shopSuite) TestCheckout() {
	s.Run("order is priced, stock is taken and the cart keeps unselected lines", func() {
		s.addItem("p-serum", "30ml", 2)
		s.addItem("p-toner", "150ml", 1)
		s.selectLines(serum30)
		s.applyVoucher("product", "GLOW10")
		s.applyVoucher("shipping", "FREESHIP")

		res := s.checkout()
		s.Equal("pending", res.Status)
		s.Equal(int64(500_000), res.Pricing.ItemsSubtotal)
		s.Equal(int64(80_000), res.Pricing.DiscountAmount)
		s.Equal(int64(450_000), res.Pricing.TotalAmount)

		s.Equal(3, dbtest.StockOf(s.T(), s.DB, "p-serum", "30ml"))
		s.Equal(10, dbtest.StockOf(s.T(), s.DB, "p-toner", "150ml"))

		cart := s.do(http.MethodGet, "/api/cart", nil, s.customer)
		s.Require().Len(cart.Items, 1)
		s.Equal(toner, cart.Items[0].LineID)
		s.Empty(cart.Vouchers)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+res.OrderID.String(), nil, s.customer.AccessToken)
		var view queries.OrderView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Len(view.Items, 1)
		s.Equal("Thanh pho Ho Chi Minh", view.ShippingAddress.ProvinceName)
		s.Equal("Phuong Ben Nghe", view.ShippingAddress.WardName)
		s.Len(view.Vouchers, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers", nil, "")
		var vouchers []queries.VoucherView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vouchers)
		s.Require().Len(vouchers, 1, "FREESHIP had one use left")
		s.Equal("GLOW10", vouchers[0].Code)
	})

	s.Run("nothing selected", func() {
		s.addItem("p-toner", "150ml", 1)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout", checkoutBody(), s.customer.AccessToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("stock sold out after the line was added", func() {
		s.addItem("p-serum", "50ml", 2)
		s.selectLines(serum50)
		_, err := s.DB.Exec(s.T().Context(), "UPDATE product_variants SET stock_qty = 1 WHERE product_id = 'p-serum' AND size = '50ml'")
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout", checkoutBody(), s.customer.AccessToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		s.Equal(1, dbtest.StockOf(s.T(), s.DB, "p-serum", "50ml"))

		cart := s.do(http.MethodGet, "/api/cart", nil, s.customer)
		s.Len(cart.Items, 1, "a failed checkout leaves the cart alone")
	})

	s.Run("a retried checkout with the same key places one order", func() {
		s.addItem("p-serum", "30ml", 1)
		s.selectLines(serum30)
		headers := map[string]string{"Idempotency-Key": "6f1c2a7e-3b9d-4e58-9a41-0c2d5e7f8a90"}

		first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/checkout", checkoutBody(), headers, s.customer.AccessToken)
		var placed resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, &placed)

		retry := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/checkout", checkoutBody(), headers, s.customer.AccessToken)
		var replayed resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), retry, http.StatusCreated, &replayed)
		s.Equal(placed.OrderID, replayed.OrderID)
		s.Equal("true", retry.Header().Get("Idempotent-Replayed"))
		s.Equal(4, dbtest.StockOf(s.T(), s.DB, "p-serum", "30ml"))

		changed := checkoutBody()
		changed["paymentMethod"] = "card"
		changed["paymentIntentId"] = "pi_123"
		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/checkout", changed, headers, s.customer.AccessToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "idempotency key")
	})
}

func (s *shopSuite) TestOrderLifecycle() {
	s.Run("cancel restores stock and frees the vouchers", func() {
		s.addItem("p-serum", "30ml", 2)
		s.selectLines(serum30)
		s.applyVoucher("shipping", "FREESHIP")
		res := s.checkout()
		s.Equal(3, dbtest.StockOf(s.T(), s.DB, "p-serum", "30ml"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+res.OrderID.String()+"/cancel", nil, s.customer.AccessToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())
		s.Equal(5, dbtest.StockOf(s.T(), s.DB, "p-serum", "30ml"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers", nil, "")
		var vouchers []queries.VoucherView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vouchers)
		s.Len(vouchers, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+res.OrderID.String()+"/cancel", nil, s.customer.AccessToken)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("admin walks the order forward one step at a time", func() {
		s.addItem("p-toner", "150ml", 1)
		s.selectLines(toner)
		id := s.checkout().OrderID.String()

		s.Equal(http.StatusConflict, s.advance(id, "shipped"))
		s.Equal(http.StatusNoContent, s.advance(id, "processing"))
		s.Equal(http.StatusNoContent, s.advance(id, "shipped"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+id+"/cancel", nil, s.customer.AccessToken)
		s.Equal(http.StatusConflict, w.Code, "shipped orders cannot be cancelled")

		s.Equal(http.StatusNoContent, s.advance(id, "delivered"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/admin/orders/"+id+"/status",
			map[string]any{"status": "delivered"}, s.customer.AccessToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("orders are private and paged newest first", func() {
		for range 3 {
			s.addItem("p-toner", "150ml", 1)
			s.selectLines(toner)
			s.checkout()
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders?limit=2", nil, s.customer.AccessToken)
		var page resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Len(page.Items, 2)
		s.Require().NotEmpty(page.NextCursor)
		s.False(page.Items[0].CreatedAt.Before(page.Items[1].CreatedAt))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders?limit=2&cursor="+url.QueryEscape(page.NextCursor), nil, s.customer.AccessToken)
		var next resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &next)
		s.Len(next.Items, 1)
		s.Empty(next.NextCursor)

		stranger := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "minh@example.com", string(user.RoleCustomer))
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+page.Items[0].ID.String(), nil, stranger.AccessToken)
		s.Equal(http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+page.Items[0].ID.String(), nil, s.admin.AccessToken)
		s.Equal(http.StatusOK, w.Code)
	})
}
