package constants

import "fmt"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
	ErrOnlyUsersCanAccess  = "❌ Only logged-in customers may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

var (
	AllRoles  = []string{RoleUser, RoleAdmin}
	AdminOnly = []string{RoleAdmin}
)
