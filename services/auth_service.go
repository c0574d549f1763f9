// File: /services/auth_service.go
package services

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventure-api/models"
)

// Session tokens are valid as long as the cookie that carries them.
const TokenLifetime = 14 * 24 * time.Hour

type AuthService struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *EmailService
}

func NewAuthService(db *gorm.DB, jwtSecret string, emailService *EmailService) *AuthService {
	return &AuthService{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

// Login validates credentials and issues a session token. Bad username and
// bad password produce the same generic failure so the response never
// reveals whether the account exists.
func (s *AuthService) Login(username, password string) (*models.LoginResult, error) {
	var user models.User
	if err := s.db.First(&user, "user_name = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.LoginResult{Succeeded: false, ErrorMessage: "Wrong username or password."}, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return &models.LoginResult{Succeeded: false, ErrorMessage: "Wrong username or password."}, nil
	}

	token, err := s.generateJWT(user.ID, user.UserName)
	if err != nil {
		return nil, err
	}

	return &models.LoginResult{Succeeded: true, Token: token}, nil
}

// GetRoles returns the role names of the given user.
func (s *AuthService) GetRoles(username string) ([]string, error) {
	var user models.User
	if err := s.db.First(&user, "user_name = ?", username).Error; err != nil {
		return nil, err
	}
	return []string{user.Role}, nil
}

// RegisterUser creates a new account with a hashed password and the default
// role. The welcome email is best effort and never fails the registration.
func (s *AuthService) RegisterUser(req models.RegisterRequest) (*models.RegistrationResult, error) {
	var existing models.User
	if err := s.db.First(&existing, "user_name = ?", req.UserName).Error; err == nil {
		return &models.RegistrationResult{Message: "Username is already taken."}, nil
	}
	if err := s.db.First(&existing, "email = ?", req.Email).Error; err == nil {
		return &models.RegistrationResult{Message: "Email is already registered."}, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		UserName: req.UserName,
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "User",
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
	}

	return &models.RegistrationResult{Message: "Registration successful"}, nil
}

func (s *AuthService) generateJWT(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
