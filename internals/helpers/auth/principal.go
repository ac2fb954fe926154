// file: internals/helpers/auth/principal.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"claimku_backend/internals/constants"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocPrincipal = "principal"
	LocRawToken  = "raw_token"
)

// Principal is the verified caller for one request. It is built once by
// the auth middleware and read from c.Locals everywhere else - handlers
// never touch cookies or env directly.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

// GetPrincipal returns the verified principal or a 401 fiber error.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	v := c.Locals(LocPrincipal)
	if v == nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}
	p, ok := v.(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}
	return p, nil
}

// GetUserIDFromToken is a convenience wrapper for handlers that only
// need the caller's id.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	p, err := GetPrincipal(c)
	if err != nil {
		return uuid.Nil, err
	}
	return p.UserID, nil
}

func IsAdmin(c *fiber.Ctx) bool {
	p, err := GetPrincipal(c)
	return err == nil && p.IsAdmin()
}
