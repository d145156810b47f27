// Package user contains the User aggregate. Users own parcels and delivery
// orders; administrators additionally update order status and location.
package user

import (
	"errors"
	"fmt"
	"strings"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role determines what a user may do: customers manage their own parcels and
// orders, admins additionally update status and location of any order.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Customer is the default role for registered users.
	Customer

	// Admin may update status and current location of any order.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Admin:       "admin",
	}
}

// RoleFromString parses a wire-format role name.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return Customer, nil
	case "admin":
		return Admin, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks if the Role is one of the defined roles.
func (r Role) Validate() error {
	if r != Customer && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// User is the aggregate for a registered account. The password is stored only
// as a bcrypt hash produced by the application layer; the aggregate never sees
// the plaintext.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a User with validation. Field violations are collected via
// errors.Join.
func NewUser(id kernel.UUID, name string, email string, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, name string, email string, passwordHash string, role Role) (*User, error) {
	return NewUser(id, name, email, passwordHash, role)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the login email, lower-cased.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == Admin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
