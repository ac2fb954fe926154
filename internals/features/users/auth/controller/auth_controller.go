// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"claimku_backend/internals/configs"
	d "claimku_backend/internals/features/users/auth/dto"
	m "claimku_backend/internals/features/users/auth/model"
	helper "claimku_backend/internals/helpers"
	helperAuth "claimku_backend/internals/helpers/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   Register
   ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	user := m.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("[Auth.Register] db error: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	return helper.JsonCreated(c, fiber.Map{"user": user})
}

/* =========================
   Login - bcrypt check + JWT in httpOnly cookie
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user m.User
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong email or password")
		}
		log.Printf("[Auth.Login] db error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong email or password")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[Auth.Login] sign error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   configs.AppEnv != "development",
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* =========================
   Me - echo the verified principal
   ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	var user m.User
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", p.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonOK(c, fiber.Map{"user": user})
}

/* =========================
   Logout - blacklist the token until it expires anyway
   ========================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(helperAuth.LocRawToken).(string)
	if raw != "" {
		expiredAt := time.Now().Add(accessTokenTTL)
		if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		entry := m.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
		if err := ctl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
			// token already blacklisted is fine
			log.Printf("[Auth.Logout] blacklist insert: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, fiber.Map{"message": "logged out"})
}

/* =========================
   Blacklist checker for the JWT middleware
   ========================= */

func BlacklistChecker(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var n int64
		err := db.Model(&m.TokenBlacklist{}).
			Where("token = ? AND expired_at > NOW()", rawToken).
			Count(&n).Error
		return n > 0, err
	}
}
