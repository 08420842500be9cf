package converter

import (
	"encoding/json"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"
)

func OrderToRow(o *order.Order) (pgsql.OrderRow, error) {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return pgsql.OrderRow{}, errs.Wrap(err, "encode order items")
	}
	addr, err := json.Marshal(o.Address())
	if err != nil {
		return pgsql.OrderRow{}, errs.Wrap(err, "encode shipping address")
	}
	vouchers := o.Vouchers()
	if vouchers == nil {
		vouchers = []voucher.Applied{}
	}
	vs, err := json.Marshal(vouchers)
	if err != nil {
		return pgsql.OrderRow{}, errs.Wrap(err, "encode vouchers")
	}

	p := o.Pricing()
	return pgsql.OrderRow{
		ID:               o.ID(),
		UserID:           o.UserID(),
		Items:            items,
		ItemsSubtotal:    p.ItemsSubtotal,
		ProductDiscount:  p.ProductDiscount,
		ShippingDiscount: p.ShippingDiscount,
		DiscountAmount:   p.DiscountAmount,
		ShippingCost:     p.ShippingCost,
		TotalAmount:      p.TotalAmount,
		PaymentMethod:    string(o.Payment().Method),
		PaymentIntentID:  o.Payment().IntentID,
		Status:           o.Status().String(),
		ShippingAddress:  addr,
		Vouchers:         vs,
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

func OrderFromRow(r pgsql.OrderRow) (*order.Order, error) {
	var p order.Params
	if err := json.Unmarshal(r.Items, &p.Items); err != nil {
		return nil, errs.Wrapf(err, "decode items of order %s", r.ID)
	}
	if err := json.Unmarshal(r.ShippingAddress, &p.Address); err != nil {
		return nil, errs.Wrapf(err, "decode address of order %s", r.ID)
	}
	if len(r.Vouchers) > 0 {
		if err := json.Unmarshal(r.Vouchers, &p.Vouchers); err != nil {
			return nil, errs.Wrapf(err, "decode vouchers of order %s", r.ID)
		}
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", r.ID)
	}

	p.UserID = r.UserID
	p.Pricing = order.Pricing{
		ItemsSubtotal:    r.ItemsSubtotal,
		ProductDiscount:  r.ProductDiscount,
		ShippingDiscount: r.ShippingDiscount,
		DiscountAmount:   r.DiscountAmount,
		ShippingCost:     r.ShippingCost,
		TotalAmount:      r.TotalAmount,
	}
	p.Payment = order.Payment{Method: order.PaymentMethod(r.PaymentMethod), IntentID: r.PaymentIntentID}

	return order.Reconstruct(r.ID, p, status, pgconv.TimeFromPgtype(r.CreatedAt), pgconv.TimeFromPgtype(r.UpdatedAt)), nil
}
