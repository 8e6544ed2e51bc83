package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/gin-gonic/gin"
)

// CreateDonationRequest writes a new request. Status is always pending at
// creation; whatever the caller put in that field is overwritten.
func (h *Handler) CreateDonationRequest(c *gin.Context) {
	var input models.DonationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	input.Status = models.DonationPending
	input.DonorName = ""
	input.DonorEmail = ""
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Donations.Insert(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetDonationRequests(c *gin.Context) {
	page, size := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.stores.Donations.Find(ctx, c.Query("email"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetDonationRequestsForVolunteer(c *gin.Context) {
	h.listAllDonationRequests(c)
}

func (h *Handler) GetAllDonationRequests(c *gin.Context) {
	h.listAllDonationRequests(c)
}

func (h *Handler) listAllDonationRequests(c *gin.Context) {
	page, size := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.stores.Donations.FindAll(ctx, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ReplaceDonationRequest overwrites the descriptive fields with upsert
// semantics: a miss on the identifier creates the record instead of failing.
func (h *Handler) ReplaceDonationRequest(c *gin.Context) {
	var input models.DonationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Donations.Replace(ctx, c.Param("id"), input)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AssignDonor merges the donor identity onto the record and moves it to
// inProgress. The transition is applied from whatever state the record is
// in; invoking it again simply rewrites the same fields.
func (h *Handler) AssignDonor(c *gin.Context) {
	var input models.DonorAssignment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Donations.AssignDonor(ctx, c.Param("id"), input)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) MarkDonationDone(c *gin.Context) {
	h.setDonationStatus(c, models.DonationDone)
}

func (h *Handler) MarkDonationCanceled(c *gin.Context) {
	h.setDonationStatus(c, models.DonationCanceled)
}

func (h *Handler) setDonationStatus(c *gin.Context, status models.DonationStatus) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Donations.SetStatus(ctx, c.Param("id"), status)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteDonationRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Donations.Delete(ctx, c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}
