package api

import (
	"errors"
	"net/http"

	"carconnect/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type settingsRequest struct {
	NewEmail        string `json:"new_email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tokenStr, user, err := s.svc.Auth().Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenStr,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (s *Server) logout(c *gin.Context) {
	session := currentSession(c)
	if session != nil {
		if err := s.svc.Auth().Logout(c.Request.Context(), session.ID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to sign out"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// session is the auth-state probe; behind sessionAuth it can only answer
// for a live identity.
func (s *Server) session(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// updateSettings applies an email change and/or a password change in one
// submission. The two are independent: one failing does not undo the
// other, and each failure message is reported as-is.
func (s *Server) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Confirmation mismatch aborts before any re-authentication call.
	if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords don't match"})
		return
	}
	if req.NewEmail == "" && req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	user := currentUser(c)
	results := gin.H{}
	status := http.StatusOK

	if req.NewEmail != "" && req.NewEmail != user.Email {
		if err := s.svc.Auth().ChangeEmail(c.Request.Context(), user.ID, req.NewEmail); err != nil {
			results["email_error"] = err.Error()
			status = http.StatusBadRequest
		} else {
			results["email"] = "updated"
		}
	}

	if req.NewPassword != "" {
		err := s.svc.Auth().ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			results["password_error"] = "current password is incorrect"
			status = http.StatusBadRequest
		case err != nil:
			results["password_error"] = err.Error()
			status = http.StatusBadRequest
		default:
			results["password"] = "updated"
		}
	}

	c.JSON(status, results)
}
