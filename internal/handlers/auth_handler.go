package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/config"
	"github.com/quikka/quikka-api/internal/httperr"
	infraRepo "github.com/quikka/quikka-api/internal/infra/repository"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/tokens"
	ucAvailability "github.com/quikka/quikka-api/internal/usecase/availability"
	"github.com/quikka/quikka-api/internal/validators"
)

const tokenTTL = 72 * time.Hour

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	revoker *tokens.Revoker
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, revoker *tokens.Revoker) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, revoker: revoker}
}

// --------- Requests ---------

type SignupRequest struct {
	Role     string `json:"role" binding:"required,oneof=stylist admin"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	// Stylist-only fields
	BusinessName    string `json:"business_name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Role == models.RoleStylist {
		if strings.TrimSpace(req.BusinessName) == "" {
			httperr.BadRequest(c, "business_name_required", "business_name is required for stylists")
			return
		}
		if len(strings.TrimSpace(req.Bio)) < 10 {
			httperr.BadRequest(c, "bio_too_short", "bio must be at least 10 characters")
			return
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not appear to exist")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not process password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
	}

	var stylist *models.Stylist

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if req.Role != models.RoleStylist {
			return nil
		}

		stylist = &models.Stylist{
			UserID:          user.ID,
			BusinessName:    strings.TrimSpace(req.BusinessName),
			Bio:             strings.TrimSpace(req.Bio),
			ProfileImageURL: req.ProfileImageURL,
		}
		if err := tx.Create(stylist).Error; err != nil {
			return err
		}

		// New stylists open Monday..Saturday 08:00-17:00 with default
		// policy until they say otherwise.
		availabilitySvc := ucAvailability.NewService(infraRepo.NewAvailabilityGormRepository(tx))
		if err := availabilitySvc.SeedDefaults(c.Request.Context(), stylist.ID); err != nil {
			return err
		}

		settingsRepo := infraRepo.NewSettingsGormRepository(tx, h.config.Policy)
		_, err := settingsRepo.GetOrDefault(c.Request.Context(), stylist.ID)
		return err
	})
	if err != nil {
		if infraRepo.IsUniqueViolation(err) {
			httperr.Write(c, http.StatusConflict, "email_already_registered", "email already registered")
			return
		}
		httperr.Internal(c, "failed_to_create_account", "could not create account")
		return
	}

	resp := gin.H{
		"message": "account created successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	}
	if stylist != nil {
		resp["user"].(gin.H)["stylist_id"] = stylist.ID
		resp["user"].(gin.H)["business_name"] = stylist.BusinessName
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	var stylist *models.Stylist
	if user.Role == models.RoleStylist {
		var s models.Stylist
		if err := h.db.Where("user_id = ?", user.ID).First(&s).Error; err == nil {
			stylist = &s
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "login_failed", "could not load stylist profile")
			return
		}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	if stylist != nil {
		claims["stylistId"] = float64(stylist.ID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "could not issue token")
		return
	}

	resp := gin.H{
		"message":      "login successful",
		"access_token": signed,
		"token_type":   "bearer",
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		},
	}
	if stylist != nil {
		resp["user"].(gin.H)["stylist_profile"] = gin.H{
			"id":                stylist.ID,
			"business_name":     stylist.BusinessName,
			"bio":               stylist.Bio,
			"profile_image_url": stylist.ProfileImageURL,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Logout puts the token's jti on the revocation list until its natural
// expiry; the middleware rejects it from then on.
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, _ := c.Get(middleware.ContextTokenJTI)
	jti, _ := jtiVal.(string)
	expVal, ok := c.Get(middleware.ContextTokenExp)
	if jti == "" || !ok {
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
		return
	}

	until := time.Unix(expVal.(int64), 0)
	if err := h.revoker.Revoke(c.Request.Context(), jti, until); err != nil {
		httperr.Internal(c, "logout_failed", "could not revoke token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
