package address

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
	"github.com/tasklane/tasklane/internal/domain/repo"
)

type Service interface {
	// Create stores the address and links it to the caller's user row.
	Create(ctx context.Context, caller model.Identity, in dto.CreateAddressDTO) (model.Address, error)
}

type service struct {
	addresses repo.AddressRepo
	v         *validator.Validate
}

func New(addresses repo.AddressRepo, v *validator.Validate) Service {
	return &service{addresses: addresses, v: v}
}

func (s *service) Create(ctx context.Context, caller model.Identity, in dto.CreateAddressDTO) (model.Address, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Address{}, apperrors.NewInvalidArgument(err.Error())
	}

	a := model.Address{
		Address1:   in.Address1,
		Address2:   in.Address2,
		City:       in.City,
		State:      in.State,
		Country:    in.Country,
		PostalCode: in.PostalCode,
		AptNum:     in.AptNum,
	}
	return s.addresses.CreateForUser(ctx, a, caller.ID)
}
