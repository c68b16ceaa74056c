package auth

import (
	"net/http"

	"github.com/dormlife/community-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Signup(c *gin.Context) {
	var request SignupRequest

	// Parse and validate multipart request
	if !handler.BindForm(c, &request) {
		return
	}

	err := a.authService.Signup(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{})
}

func (a *AuthHandler) Signin(c *gin.Context) {
	var request SigninRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Signin(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) Refresh(c *gin.Context) {
	var request RefreshRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Refresh(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
