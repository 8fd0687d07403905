package interfaces

import (
	"context"
	"errors"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
)

// ErrActiveRegistrationExists is returned by Create when the (event, owner)
// slot is already held by a pending or confirmed registration. Callers
// recover by re-reading the existing record instead of surfacing a conflict.
var ErrActiveRegistrationExists = errors.New("active registration already exists")

// IRegistrationRepository abstracts DynamoDB persistence for Registration.
//
// The active-slot uniqueness constraint lives here: Create atomically claims
// the (event, owner) slot or fails with ErrActiveRegistrationExists.

type IRegistrationRepository interface {
	Create(ctx context.Context, reg entities.Registration) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	FindActive(ctx context.Context, eventRef, ownerAccountID string) (entities.Registration, error)
	ListByOwner(ctx context.Context, ownerAccountID string) ([]entities.Registration, error)
	Update(ctx context.Context, reg entities.Registration) (entities.Registration, error)
}
