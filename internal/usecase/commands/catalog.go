package commands

import (
	"context"
	"log/slog"

	"cosme-store/internal/domain/product"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"
)

// ProductImport is one product of a catalog export. Variants may use the
// legacy "name" key; it is folded into size before anything is stored.
type ProductImport struct {
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	Variants    []product.RawVariant
}

type ImportResult struct {
	Imported int
}

type CatalogCommands interface {
	// ImportProducts upserts every product in one transaction. One invalid
	// product rejects the whole batch.
	ImportProducts(ctx context.Context, products []ProductImport) (*ImportResult, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) ImportProducts(ctx context.Context, in []ProductImport) (*ImportResult, error) {
	if len(in) == 0 {
		return nil, errs.Mark(errs.New("nothing to import"), errs.ErrValidation)
	}

	now := uc.clock.Now()
	products := make([]*product.Product, 0, len(in))
	for i, raw := range in {
		variants, err := product.NormalizeVariants(raw.Variants)
		if err != nil {
			return nil, errs.Wrapf(err, "product #%d (%s)", i, raw.ID)
		}
		p, err := product.NewProduct(raw.ID, raw.Name, raw.Description, raw.Category, raw.Image, variants, now)
		if err != nil {
			return nil, errs.Wrapf(err, "product #%d (%s)", i, raw.ID)
		}
		products = append(products, p)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, p := range products {
			if err := tx.Products().Upsert(ctx, tx.DB(), p, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("catalog imported", slog.Int("products", len(products)))
	return &ImportResult{Imported: len(products)}, nil
}
