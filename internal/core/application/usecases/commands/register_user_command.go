package commands

import (
	"errors"
	"strings"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted plaintext password.
const MinPasswordLength = 8

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new customer account.
// The plaintext password only lives inside the command; the handler hashes it
// before anything touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a customer.
// Validates that the user ID is valid, name and email are present, and the
// password meets the minimum length.
func NewRegisterUserCommand(userID kernel.UUID, name string, email string, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password for hashing.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("password is shorter than 8 characters"))
	}
	c.password = password
	return nil
}
