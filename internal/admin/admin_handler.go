package admin

import (
	"net/http"
	"os"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	token, refreshToken, adminResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Response seragam supaya tidak bocor apakah email terdaftar
		response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "Email atau password salah", nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("access_token", token, 15*60, "/", "", isProd, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", isProd, true)

	response.Success(c, http.StatusOK, gin.H{
		"admin":         adminResp,
		"access_token":  token,
		"refresh_token": refreshToken,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	adminID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	adminResp, err := h.service.GetMe(c.Request.Context(), adminID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, adminResp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("access_token", "", -1, "/", "", isProd, true)
	c.SetCookie("refresh_token", "", -1, "/", "", isProd, true)

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "Missing refresh token", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	newAccess, newRefresh, adminResp, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("access_token", newAccess, 15*60, "/", "", isProd, true)
	c.SetCookie("refresh_token", newRefresh, 3600*24*7, "/", "", isProd, true)

	response.Success(c, http.StatusOK, gin.H{
		"admin":         adminResp,
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	}, nil)
}
