package request

import (
	"strings"

	"cosme-store/internal/usecase/commands"
)

type ShippingAddressRequest struct {
	RecipientName string `json:"recipientName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Street        string `json:"street" binding:"required"`
	ProvinceCode  string `json:"provinceCode" binding:"required,numeric"`
	ProvinceName  string `json:"provinceName"`
	DistrictCode  string `json:"districtCode" binding:"required,numeric"`
	DistrictName  string `json:"districtName"`
	WardCode      string `json:"wardCode" binding:"required,numeric"`
	WardName      string `json:"wardName"`
	Note          string `json:"note" binding:"max=500"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	PaymentIntentID string                 `json:"paymentIntentId"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	a := r.ShippingAddress
	return commands.CheckoutRequest{
		Shipping: commands.ShippingInfo{
			RecipientName: strings.TrimSpace(a.RecipientName),
			Phone:         strings.TrimSpace(a.Phone),
			Street:        strings.TrimSpace(a.Street),
			ProvinceCode:  a.ProvinceCode,
			ProvinceName:  a.ProvinceName,
			DistrictCode:  a.DistrictCode,
			DistrictName:  a.DistrictName,
			WardCode:      a.WardCode,
			WardName:      a.WardName,
			Note:          strings.TrimSpace(a.Note),
		},
		PaymentMethod:   strings.ToLower(strings.TrimSpace(r.PaymentMethod)),
		PaymentIntentID: strings.TrimSpace(r.PaymentIntentID),
	}
}
