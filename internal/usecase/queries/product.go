package queries

import (
	"context"
	"strings"

	"cosme-store/internal/infra"
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id string) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
	ListByCategory(ctx context.Context, category string) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id string) (*ProductView, error)
	// List returns every product, or those of category when it is non-empty.
	List(ctx context.Context, category string) ([]*ProductView, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id string) (*ProductView, error) {
	p, err := q.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *productQueriesImpl) List(ctx context.Context, category string) ([]*ProductView, error) {
	if category = strings.TrimSpace(category); category != "" {
		return q.repo.ListByCategory(ctx, category)
	}
	return q.repo.List(ctx)
}
