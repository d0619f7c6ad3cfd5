package constants

import "fmt"

// Role values stored in users.role and carried in the JWT "role" claim.
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess    = "❌ Only admins may access %s."
	ErrOnlyEmployersCanAccess = "❌ Only employers or admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEmployer(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleCandidate,
		RoleEmployer,
		RoleAdmin,
	}

	EmployerAndAbove = []string{
		RoleEmployer,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
