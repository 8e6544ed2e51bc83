package handlers

import (
	"net/http"

	"github.com/abtaheetaseen/Life-Drop-Server/utils"
	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IssueToken mints a one-day bearer token for the supplied identity payload.
func (h *Handler) IssueToken(c *gin.Context) {
	var input tokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	token, err := utils.GenerateToken(h.jwtSecret, input.Email, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
