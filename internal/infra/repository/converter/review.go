package converter

import (
	"cosme-store/internal/domain/review"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"
)

func ReviewToRow(r *review.Review) pgsql.ReviewRow {
	return pgsql.ReviewRow{
		ID:        r.ID(),
		UserID:    r.UserID(),
		ProductID: r.ProductID(),
		OrderID:   r.OrderID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(r pgsql.ReviewRow) (*review.Review, error) {
	rating, err := review.NewRating(int(r.Rating))
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", r.ID)
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", r.ID)
	}
	return review.Reconstruct(r.ID, r.UserID, r.ProductID, r.OrderID, rating, comment,
		pgconv.TimeFromPgtype(r.CreatedAt), pgconv.TimeFromPgtype(r.UpdatedAt)), nil
}
