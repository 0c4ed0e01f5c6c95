package document

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role identifies which kind of account owns a document.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota
	// RoleCourier is a courier account.
	RoleCourier
	// RoleDistributor is a distributor account.
	RoleDistributor
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		RoleCourier:     "Courier",
		RoleDistributor: "Distributor",
	}
}

// Validate checks if the Role is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case RoleCourier, RoleDistributor:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// RequiresActivationGate reports whether accounts with this role must
// have every uploaded document approved before they are enabled.
// Only couriers go through document verification.
func (r Role) RequiresActivationGate() bool {
	return r == RoleCourier
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
