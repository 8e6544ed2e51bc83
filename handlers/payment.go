package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreatePayment appends a fund record. The transaction ID is assigned here
// when the client did not carry one over from the payment provider.
func (h *Handler) CreatePayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.TransactionID == "" {
		input.TransactionID = uuid.NewString()
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}
	if input.Currency == "" {
		input.Currency = "usd"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Payments.Insert(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetPayments(c *gin.Context) {
	page, size := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payments, err := h.stores.Payments.FindAll(ctx, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent asks Stripe for a card PaymentIntent and hands the
// client secret back. Amounts are whole cents.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var input paymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	if !h.stripeEnabled {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider is not configured"})
		return
	}

	amount := int64(math.Round(input.Price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
