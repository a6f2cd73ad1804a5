package constants

import "fmt"

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// Error message templates for role gates
const (
	ErrOnlyAdminsCanAccess  = "❌ Only admins may access the %s feature."
	ErrOnlyNonUserCanAccess = "❌ Only staff roles may access the %s feature."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorNonUser(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
