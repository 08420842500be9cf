package queries

import (
	"context"
	"strings"

	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"
)

type GeographyQueries interface {
	Provinces(ctx context.Context) ([]shared.Division, error)
	Districts(ctx context.Context, provinceCode string) ([]shared.Division, error)
	Wards(ctx context.Context, districtCode string) ([]shared.Division, error)
}

type geographyQueriesImpl struct {
	geo shared.Geography
}

func NewGeographyQueries(geo shared.Geography) GeographyQueries {
	return &geographyQueriesImpl{geo: geo}
}

func (q *geographyQueriesImpl) Provinces(ctx context.Context) ([]shared.Division, error) {
	return q.geo.Provinces(ctx)
}

func (q *geographyQueriesImpl) Districts(ctx context.Context, provinceCode string) ([]shared.Division, error) {
	code, err := divisionCode(provinceCode)
	if err != nil {
		return nil, err
	}
	return q.geo.Districts(ctx, code)
}

func (q *geographyQueriesImpl) Wards(ctx context.Context, districtCode string) ([]shared.Division, error) {
	code, err := divisionCode(districtCode)
	if err != nil {
		return nil, err
	}
	return q.geo.Wards(ctx, code)
}

// Division codes are numeric strings.
func divisionCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" || strings.Trim(code, "0123456789") != "" {
		return "", errs.Mark(errs.Newf("invalid division code %q", raw), errs.ErrValidation)
	}
	return code, nil
}
