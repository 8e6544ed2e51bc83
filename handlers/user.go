package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/middleware"
	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/gin-gonic/gin"
)

// Register creates the user record on first signup. The unique email index
// makes the insert the only write, so two concurrent signups for the same
// email cannot both land; the loser gets 409.
func (h *Handler) Register(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if input.Role == "" {
		input.Role = models.RoleDonor
	}
	if input.Status == "" {
		input.Status = models.StatusActive
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Users.Insert(ctx, input)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetAllDonors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	donors, err := h.stores.Users.FindByRole(ctx, models.RoleDonor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donors"})
		return
	}

	c.JSON(http.StatusOK, donors)
}

func (h *Handler) GetUsers(c *gin.Context) {
	page, size := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.stores.Users.FindAll(ctx, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the caller is an admin. The email param must
// match the token identity; asking about anyone else is rejected.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Forbidden Access"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.stores.Users.FindByEmail(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	admin := user != nil && user.Role == models.RoleAdmin
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *Handler) CheckVolunteer(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Forbidden Access"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.stores.Users.FindByEmail(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	volunteer := user != nil && user.Role == models.RoleVolunteer
	c.JSON(http.StatusOK, gin.H{"volunteer": volunteer})
}

func (h *Handler) MakeVolunteer(c *gin.Context) {
	h.setUserRole(c, models.RoleVolunteer)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	h.setUserRole(c, models.RoleAdmin)
}

func (h *Handler) setUserRole(c *gin.Context, role models.Role) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Users.SetRole(ctx, c.Param("id"), role)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) BlockUser(c *gin.Context) {
	h.setUserStatus(c, models.StatusBlocked)
}

func (h *Handler) UnblockUser(c *gin.Context) {
	h.setUserStatus(c, models.StatusActive)
}

func (h *Handler) setUserStatus(c *gin.Context, status models.UserStatus) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Users.SetStatus(ctx, c.Param("id"), status)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserByEmail keeps the plural route name but answers a single document.
// Zero matches is still a 200 with a null body, which callers interpret.
func (h *Handler) GetUserByEmail(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.stores.Users.FindByEmail(ctx, c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var input models.UserProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Users.ReplaceProfile(ctx, c.Param("id"), input)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}
