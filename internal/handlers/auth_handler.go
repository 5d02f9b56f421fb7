package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"interviewedge/internal/middleware"
	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
	"interviewedge/internal/utils"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthHandler manages sign-in, sign-out and the current-user endpoint. The
// identity provider has already verified the {name, email} pair; we only
// find-or-create the user and issue our own session token.
type AuthHandler struct {
	users         repositories.UserRepo
	jwtSecret     string
	signupCredits int
	logger        *zap.Logger
}

func NewAuthHandler(users repositories.UserRepo, jwtSecret string, signupCredits int, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:         users,
		jwtSecret:     jwtSecret,
		signupCredits: signupCredits,
		logger:        logger,
	}
}

func (h *AuthHandler) GoogleAuthHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GoogleAuthRequest](r)

	user, err := h.users.FindOrCreate(r.Context(), req.Name, req.Email, h.signupCredits)
	if err != nil {
		h.logger.Error("Failed to find or create user", zap.Error(err), zap.String("email", req.Email))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to sign in",
		})
		return
	}

	claims := jwt.MapClaims{
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to sign in",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	utils.JSON(w, http.StatusOK, models.AuthResponse{Message: "success", User: user})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "unauthorized",
			Message: "Unknown user",
		})
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
