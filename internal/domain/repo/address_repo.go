package repo

import (
	"context"

	"github.com/tasklane/tasklane/internal/domain/model"
)

type AddressRepo interface {
	// CreateForUser inserts the address and points users.address_id at it,
	// atomically.
	CreateForUser(ctx context.Context, address model.Address, userID int64) (model.Address, error)
}
