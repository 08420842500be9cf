//go:build unit

package fakes

import (
	"context"

	"cosme-store/internal/usecase/shared"
)

// Geography serves fixed division lists. Err, when set, fails every lookup.
type Geography struct {
	ProvinceList []shared.Division
	DistrictList map[string][]shared.Division
	WardList     map[string][]shared.Division
	Err          error
}

var _ shared.Geography = (*Geography)(nil)

// NewGeography knows Ho Chi Minh City, Quan 1 and Ben Nghe.
func NewGeography() *Geography {
	return &Geography{
		ProvinceList: []shared.Division{{Code: "1", Name: "Thanh pho Ha Noi"}, {Code: "79", Name: "Thanh pho Ho Chi Minh"}},
		DistrictList: map[string][]shared.Division{"79": {{Code: "760", Name: "Quan 1"}}},
		WardList:     map[string][]shared.Division{"760": {{Code: "26734", Name: "Phuong Ben Nghe"}}},
	}
}

func (g *Geography) Provinces(ctx context.Context) ([]shared.Division, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return g.ProvinceList, nil
}

func (g *Geography) Districts(ctx context.Context, provinceCode string) ([]shared.Division, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Err != nil {
		return nil, g.Err
	}
	list, ok := g.DistrictList[provinceCode]
	if !ok {
		return nil, shared.ErrGeographyNotFound
	}
	return list, nil
}

func (g *Geography) Wards(ctx context.Context, districtCode string) ([]shared.Division, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Err != nil {
		return nil, g.Err
	}
	list, ok := g.WardList[districtCode]
	if !ok {
		return nil, shared.ErrGeographyNotFound
	}
	return list, nil
}
