package api

import (
	"errors"
	"net/http"

	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// createCarRequest takes the numeric fields as strings the way the admin
// form posts them; they are coerced before hitting the service.
type createCarRequest struct {
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        string   `json:"year"`
	Price       string   `json:"price"`
	Mileage     string   `json:"mileage"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	ImageURLs   []string `json:"imageUrls"`
}

func (s *Server) listCars(c *gin.Context) {
	cars, err := s.svc.Car().GetAll(c.Request.Context())
	if err != nil {
		// Explicit error payload so the catalog can show a retry
		// affordance instead of rendering silently empty.
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load listings"})
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

func (s *Server) getCar(c *gin.Context) {
	car, err := s.svc.Car().GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load listing"})
		return
	}
	c.JSON(http.StatusOK, car)
}

func (s *Server) createCar(c *gin.Context) {
	var req createCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	car, err := s.svc.Car().Create(c.Request.Context(), service.CreateCarInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        cast.ToInt(req.Year),
		Price:       cast.ToFloat64(req.Price),
		Mileage:     cast.ToFloat64(req.Mileage),
		Description: req.Description,
		Status:      req.Status,
		ImageURLs:   req.ImageURLs,
	})

	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrNoImages),
		errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.log.Error("car create failed", logger.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to add car"})
		return
	}

	c.JSON(http.StatusCreated, car)
}

func (s *Server) updateCarStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := s.svc.Car().SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (s *Server) deleteCar(c *gin.Context) {
	err := s.svc.Car().Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}
