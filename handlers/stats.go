package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) TotalUsersCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	count, err := h.stores.Users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalUsersCount": count})
}

func (h *Handler) TotalPaymentCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	count, err := h.stores.Payments.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalPaymentCountForPagination": count})
}

func (h *Handler) TotalDonationRequestCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	count, err := h.stores.Donations.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalDonationRequestCount": count})
}

func (h *Handler) TotalDonationRequestCountForUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	count, err := h.stores.Donations.CountByRequester(ctx, c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalDonationRequestCountUser": count})
}

func (h *Handler) AdminStats(c *gin.Context) {
	h.dashboardStats(c)
}

func (h *Handler) VolunteerStats(c *gin.Context) {
	h.dashboardStats(c)
}

// dashboardStats reports the shared dashboard counters. Revenue is summed
// in-process over the full payments collection.
func (h *Handler) dashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	totalUsers, err := h.stores.Users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	totalDonationRequests, err := h.stores.Donations.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	funds, err := h.stores.Payments.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var revenue float64
	for _, fund := range funds {
		revenue += fund.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":            totalUsers,
		"totalDonationRequests": totalDonationRequests,
		"revenue":               revenue,
	})
}
