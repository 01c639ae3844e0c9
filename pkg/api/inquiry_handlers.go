package api

import (
	"errors"
	"net/http"

	"carconnect/pkg/models"
	"carconnect/service"

	"github.com/gin-gonic/gin"
)

type createInquiryRequest struct {
	CarID   string `json:"car_id"`
	CarName string `json:"car_name"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (s *Server) createInquiry(c *gin.Context) {
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	inq, err := s.svc.Inquiry().Create(c.Request.Context(), service.CreateInquiryInput{
		CarID:   req.CarID,
		CarName: req.CarName,
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	})

	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and message are required"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send inquiry"})
		return
	}

	c.JSON(http.StatusCreated, inq)
}

func (s *Server) listInquiries(c *gin.Context) {
	inquiries, err := s.svc.Inquiry().GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load inquiries"})
		return
	}
	if inquiries == nil {
		inquiries = []*models.Inquiry{}
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

func (s *Server) deleteInquiry(c *gin.Context) {
	err := s.svc.Inquiry().Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted"})
}
