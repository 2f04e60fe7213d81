package handler

import (
	"net/url"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/middleware"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	uc          *usecase.AuthUsecase
	tokens      *service.TokenService
	google      *service.GoogleOAuthService
	frontendURL string
}

// NewAuthHandler builds the auth routes. google may be nil, in which case the
// Google sign-in routes are not registered.
func NewAuthHandler(uc *usecase.AuthUsecase, tokens *service.TokenService, google *service.GoogleOAuthService, frontendURL string) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens, google: google, frontendURL: frontendURL}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", middleware.RateLimiter(20, 1*time.Minute), h.Signup)
	auth.Post("/login", middleware.RateLimiter(20, 1*time.Minute), h.Login)
	auth.Post("/forgot-verify", h.ForgotVerify)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/me", middleware.Auth(h.tokens), h.Me)

	if h.google != nil {
		app.Get("/auth/google", h.GoogleRedirect)
		app.Get("/auth/google/callback", h.GoogleCallback)
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	res, err := h.uc.Signup(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Signup failed")
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	res, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Login failed")
	}
	return c.JSON(res)
}

func (h *AuthHandler) ForgotVerify(c *fiber.Ctx) error {
	var req dto.ForgotVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.uc.ForgotVerify(c.UserContext(), req); err != nil {
		return respondError(c, err, "Verification failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.uc.ResetPassword(c.UserContext(), req); err != nil {
		return respondError(c, err, "Password reset failed")
	}
	return c.JSON(fiber.Map{"ok": true, "message": "Password updated successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load profile")
	}
	return c.JSON(user)
}

func (h *AuthHandler) GoogleRedirect(c *fiber.Ctx) error {
	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(h.google.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the OAuth flow and hands the session to the
// frontend welcome page as query parameters.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Cookies(oauthStateCookie)
	if state == "" || state != c.Query("state") {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid OAuth state",
		})
	}
	c.ClearCookie(oauthStateCookie)

	profile, err := h.google.Exchange(c.UserContext(), c.Query("code"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Google sign-in failed",
		}, err)
	}
	res, err := h.uc.GoogleLogin(c.UserContext(), profile)
	if err != nil {
		return respondError(c, err, "Google sign-in failed")
	}

	q := url.Values{}
	q.Set("token", res.Token)
	q.Set("name", res.Name)
	q.Set("email", res.Email)
	return c.Redirect(h.frontendURL+"?"+q.Encode(), fiber.StatusFound)
}
