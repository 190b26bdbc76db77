package handler

import (
	userDto "anoa.com/forumapi/internal/modules/user/dto"
	user "anoa.com/forumapi/internal/modules/user/service"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/response"
	"anoa.com/forumapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService user.AuthService
}

func NewAuthHandler(authService user.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) PostUser(c *gin.Context) {
	var req userDto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	addedUser, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, gin.H{"addedUser": addedUser})
}

func (h *AuthHandler) PostAuthentication(c *gin.Context) {
	var req userDto.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, res)
}

func (h *AuthHandler) PutAuthentication(c *gin.Context) {
	var req userDto.RefreshTokenInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	res, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, res)
}

func (h *AuthHandler) DeleteAuthentication(c *gin.Context) {
	var req userDto.RefreshTokenInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nil)
}
