package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/badminton-portal/internal/backend"
)

type AuthHandler struct {
	be *backend.Client
}

func NewAuthHandler(be *backend.Client) *AuthHandler {
	return &AuthHandler{be: be}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.be.Register(c.Request.Context(), backend.RegisterRequest{
		Email: in.Email, Password: in.Password, Name: in.Name, Phone: in.Phone,
	})
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.be.Login(c.Request.Context(), backend.Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		answerBackendErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
