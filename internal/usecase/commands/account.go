package commands

import (
	"context"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// ProfileInput carries the fields to change; nil leaves a field as is.
type ProfileInput struct {
	DisplayName *string
	Phone       *string
}

type AccountCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) error
}

type accountCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountCommands(uow shared.UnitOfWork, clk clock.Clock) AccountCommands {
	return &accountCommandsImpl{uow: uow, clock: clk}
}

func (uc *accountCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		name, phone := u.DisplayName(), u.Phone()
		if in.DisplayName != nil {
			if name, err = user.NewDisplayName(*in.DisplayName); err != nil {
				return err
			}
		}
		if in.Phone != nil {
			if phone, err = user.NewPhone(*in.Phone); err != nil {
				return err
			}
		}

		u.UpdateProfile(name, phone, uc.clock.Now())
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
}
