package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
)

const (
	LocalsAccountId = "account_id"
	LocalsRole      = "role"
)

// GenerateToken signs an HS256 token carrying the account id and role.
func GenerateToken(secret string, accountId uuid.UUID, role constant.Role, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   accountId.String(),
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// JwtMiddleware authenticates the bearer token and, when roles are given,
// rejects callers whose role is not in the list. Claims are stashed in
// Locals; handlers re-check account state against storage.
func JwtMiddleware(secret string, roles ...constant.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing token",
			})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid claims",
			})
		}

		idStr, _ := claims["id"].(string)
		accountId, err := uuid.Parse(idStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid claims",
			})
		}

		roleStr, _ := claims["role"].(string)
		role, err := constant.ParseRole(roleStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid claims",
			})
		}

		if len(roles) > 0 && !roleAllowed(role, roles) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied",
			})
		}

		ctx.Locals(LocalsAccountId, accountId)
		ctx.Locals(LocalsRole, role)
		return ctx.Next()
	}
}

func roleAllowed(role constant.Role, allowed []constant.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// AccountId reads the authenticated account id stored by JwtMiddleware.
func AccountId(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(LocalsAccountId).(uuid.UUID)
	return id
}

// AccountRole reads the authenticated role stored by JwtMiddleware.
func AccountRole(ctx *fiber.Ctx) constant.Role {
	role, _ := ctx.Locals(LocalsRole).(constant.Role)
	return role
}
