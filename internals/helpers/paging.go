// file: internals/helpers/paging.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolveLimit reads ?limit= and normalizes it.
// - defaultLimit: fallback when absent/invalid
// - maxLimit: hard cap (0 = uncapped)
func ResolveLimit(c *fiber.Ctx, defaultLimit, maxLimit int) int {
	raw := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))
	limit, _ := strconv.Atoi(raw)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
