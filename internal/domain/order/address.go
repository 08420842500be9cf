package order

import "strings"

// ShippingAddress is the delivery address copied onto an order. Codes come
// from the geography service and are numeric; names are resolved at checkout.
type ShippingAddress struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	ProvinceCode  string `json:"provinceCode"`
	ProvinceName  string `json:"provinceName"`
	DistrictCode  string `json:"districtCode"`
	DistrictName  string `json:"districtName"`
	WardCode      string `json:"wardCode"`
	WardName      string `json:"wardName"`
	Note          string `json:"note,omitempty"`
}

func (a ShippingAddress) Validate() error {
	for _, f := range []string{a.RecipientName, a.Phone, a.Street, a.ProvinceCode, a.DistrictCode, a.WardCode} {
		if strings.TrimSpace(f) == "" {
			return ErrInvalidAddress
		}
	}
	for _, code := range []string{a.ProvinceCode, a.DistrictCode, a.WardCode} {
		if strings.Trim(strings.TrimSpace(code), "0123456789") != "" {
			return ErrInvalidAddress
		}
	}
	return nil
}

// Line renders the address on one line, street first.
func (a ShippingAddress) Line() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.WardName, a.DistrictName, a.ProvinceName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
