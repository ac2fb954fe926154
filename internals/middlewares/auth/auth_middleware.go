package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"claimku_backend/internals/constants"
	helperAuth "claimku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if blacklisted
	AllowCookieFallback bool                                // read cookie access_token when no Bearer header
}

// AuthJWT verifies the token and hydrates a request-scoped Principal.
// Handlers downstream read the caller only through helperAuth.GetPrincipal.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token source: Authorization: Bearer xxx (cookie fallback if allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Blacklist check (optional)
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		userID, err := uuid.Parse(strClaim(claims, "sub"))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
		}
		role := strClaim(claims, "role")
		if role == "" {
			role = constants.RoleUser
		}

		c.Locals(helperAuth.LocPrincipal, helperAuth.Principal{
			UserID: userID,
			Role:   role,
		})
		c.Locals(helperAuth.LocRawToken, raw)
		c.Locals("jwt_claims", claims)

		return c.Next()
	}
}

// AdminOnly guards admin route groups; must run after AuthJWT.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := helperAuth.GetPrincipal(c)
		if err != nil {
			return err
		}
		if !p.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("claim review"))
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
