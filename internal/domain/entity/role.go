// Package entity contains the core business objects of the project.
package entity

// Role represents the marketplace role a user acts in.
type Role string

const (
	// RoleCustomer places orders.
	RoleCustomer Role = "customer"
	// RoleDriver delivers orders.
	RoleDriver Role = "driver"
	// RoleMerchant owns one or more stores.
	RoleMerchant Role = "merchant"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleMerchant:
		return true
	default:
		return false
	}
}
