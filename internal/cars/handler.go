package cars

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ostroner/smartCarproject/internal/model"
	"github.com/Ostroner/smartCarproject/internal/store"
)

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

type carRequest struct {
	LicensePlate string `json:"licensePlate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	OwnerName    string `json:"ownerName"`
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.store.Cars()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) Create(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LicensePlate == "" || req.Make == "" || req.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	if req.OwnerName == "" {
		req.OwnerName = "Unknown"
	}

	car := model.Car{
		LicensePlate: req.LicensePlate,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		OwnerName:    req.OwnerName,
	}
	if err := h.store.CreateCar(&car); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Car added successfully",
		"data":    car,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LicensePlate == "" || req.Make == "" || req.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	car := model.Car{
		ID:           id,
		LicensePlate: req.LicensePlate,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		OwnerName:    req.OwnerName,
	}
	if err := h.store.UpdateCar(&car); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Car updated successfully",
		"data":    car,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	if err := h.store.DeleteCar(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car deleted successfully"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
