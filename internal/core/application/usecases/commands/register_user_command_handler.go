package commands

import (
	"context"

	"sendit/internal/core/domain/model/user"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles customer registration.
// Hashes the password with bcrypt and persists the new account; a duplicate
// email surfaces as a uniqueness violation from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. New accounts always get the
// customer role; admin accounts are provisioned out of band.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), string(hash), user.Customer)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
