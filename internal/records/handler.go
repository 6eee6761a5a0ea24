package records

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ostroner/smartCarproject/internal/model"
	"github.com/Ostroner/smartCarproject/internal/store"
)

// Handler serves the service-record routes: one row per service performed on
// a car, priced from the catalog but stored with its own cost.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Routes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

type recordRequest struct {
	CarID       uint    `json:"carId"`
	ServiceID   uint    `json:"serviceId"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"`
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.store.ServiceRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) Create(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CarID == 0 || req.ServiceID == 0 || req.Cost == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	rec := model.ServiceRecord{
		CarID:       req.CarID,
		ServiceID:   req.ServiceID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
	}
	if err := h.store.CreateServiceRecord(&rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service record added successfully",
		"data":    rec,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CarID == 0 || req.ServiceID == 0 || req.Cost == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	rec := model.ServiceRecord{
		ID:          id,
		CarID:       req.CarID,
		ServiceID:   req.ServiceID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
	}
	if err := h.store.UpdateServiceRecord(&rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service record updated successfully",
		"data":    rec,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	if err := h.store.DeleteServiceRecord(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service record deleted successfully"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
