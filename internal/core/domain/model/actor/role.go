package actor

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Role identifies the capacity in which an actor interacts with the core.
// It is a value object validated at the boundary of every mutating operation.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is a customer acting on their own orders.
	RoleCustomer

	// RoleTailor is a production worker advancing orders assigned to them.
	RoleTailor

	// RoleStaff is shop staff with full operational access.
	RoleStaff

	// RoleAdmin is an administrator; the only role allowed to adjust
	// recorded payments.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleTailor:   "Tailor",
		RoleStaff:    "Staff",
		RoleAdmin:    "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleTailor:   "Tailor",
		RoleStaff:    "Staff",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a stored or transported role name.
// Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Tailor, Staff, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsStaffLevel reports whether the role carries shop-side operational
// privileges, which both Staff and Admin do.
func (r Role) IsStaffLevel() bool {
	return r == RoleStaff || r == RoleAdmin
}
