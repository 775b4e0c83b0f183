package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type AddressRepo struct {
	db *gorm.DB
}

func NewAddressRepo(db *gorm.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

// CreateForUser inserts the address and links users.address_id to it inside
// one transaction, so a failed link never leaves an orphaned address.
func (r *AddressRepo) CreateForUser(ctx context.Context, address model.Address, userID int64) (model.Address, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		res := tx.Model(&model.User{}).Where("id = ?", userID).
			Update("address_id", address.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Address{}, apperrors.ErrNotFound
	}
	if err != nil {
		return model.Address{}, apperrors.WrapInternal(err, "CreateForUser")
	}
	return address, nil
}
