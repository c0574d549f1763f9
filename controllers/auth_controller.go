// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"eventure-api/models"
	"eventure-api/services"
	"eventure-api/utils"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login validates credentials and, on success, sets the session cookie and
// returns the username with its roles. Fault details go to the log, never
// to the client.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.LoginResult{Succeeded: false, ErrorMessage: "Invalid inputs"})
		return
	}

	result, err := ac.authService.Login(req.UserName, req.Password)
	if err != nil {
		log.Printf("Login failed for %q: %v", req.UserName, err)
		c.JSON(http.StatusInternalServerError, models.LoginResult{Succeeded: false, ErrorMessage: "An error occured on the server."})
		return
	}

	if !result.Succeeded {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	roles, err := ac.authService.GetRoles(req.UserName)
	if err != nil {
		log.Printf("Role lookup failed for %q: %v", req.UserName, err)
		c.JSON(http.StatusInternalServerError, models.LoginResult{Succeeded: false, ErrorMessage: "An error occured on the server."})
		return
	}

	// Session cookie: cross-site capable, essential, 14 days.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", result.Token, int(services.TokenLifetime.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, models.LoginResponse{
		UserName: req.UserName,
		Roles:    roles,
	})
}

// Logout is a no-op success; the client discards the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.SendSuccess(c, "Successfully logged out", nil)
}

// Signup registers a new account and echoes the registration data back with
// the resulting message.
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err)})
		return
	}

	result, err := ac.authService.RegisterUser(req)
	if err != nil {
		log.Printf("Registration failed for %q: %v", req.UserName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occured on the server."})
		return
	}

	req.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"user":    req,
	})
}

// validationErrors flattens gin's binding errors into field-level messages.
func validationErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{
				"field":   fe.Field(),
				"message": "failed on the '" + fe.Tag() + "' rule",
			})
		}
		return out
	}
	return []gin.H{{"message": err.Error()}}
}
