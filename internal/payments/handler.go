package payments

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ostroner/smartCarproject/internal/model"
	"github.com/Ostroner/smartCarproject/internal/store"
)

// Handler serves the payment routes. Payments are append-only: there is no
// update or delete.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Routes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
}

type paymentRequest struct {
	CarID         uint    `json:"carId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Date          string  `json:"date"`
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.store.Payments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CarID == 0 || req.Amount == 0 || req.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	p := model.Payment{
		CarID:         req.CarID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	}
	if err := h.store.CreatePayment(&p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment recorded successfully",
		"data":    p,
	})
}
