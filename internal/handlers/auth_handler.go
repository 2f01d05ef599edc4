package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucIdentity "github.com/BruksfildServices01/barber-manager/internal/usecase/identity"
)

type AuthHandler struct {
	login          *ucIdentity.Login
	changePassword *ucIdentity.ChangePassword
}

func NewAuthHandler(
	login *ucIdentity.Login,
	changePassword *ucIdentity.ChangePassword,
) *AuthHandler {
	return &AuthHandler{
		login:          login,
		changePassword: changePassword,
	}
}

// --------- Requests ---------

// Fields are checked by the use case so each gets its own message.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AlterPasswordRequest struct {
	Login       string `json:"login"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) LoginBarbershop(c *gin.Context) {
	h.handleLogin(c, auth.PrincipalBarbershop)
}

func (h *AuthHandler) LoginBarber(c *gin.Context) {
	h.handleLogin(c, auth.PrincipalBarber)
}

func (h *AuthHandler) handleLogin(c *gin.Context, pt auth.PrincipalType) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), ucIdentity.LoginInput{
		Login:    req.Login,
		Password: req.Password,
		Type:     pt,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// TokenVerify runs behind RequireToken, so reaching it means the token is
// valid for the route's principal type.
func (h *AuthHandler) TokenVerify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"id":    middleware.PrincipalID(c),
	})
}

func (h *AuthHandler) AlterPassword(c *gin.Context) {
	var req AlterPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.changePassword.Execute(c.Request.Context(), ucIdentity.ChangePasswordInput{
		Login:       req.Login,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	}); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed."})
}
