package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Reference lookups are open full-table reads.

func (h *Handler) GetDivisions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	divisions, err := h.stores.Reference.Divisions(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch divisions"})
		return
	}

	c.JSON(http.StatusOK, divisions)
}

func (h *Handler) GetDistricts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	districts, err := h.stores.Reference.Districts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch districts"})
		return
	}

	c.JSON(http.StatusOK, districts)
}

func (h *Handler) GetUpazilas(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	upazilas, err := h.stores.Reference.Upazilas(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch upazilas"})
		return
	}

	c.JSON(http.StatusOK, upazilas)
}
