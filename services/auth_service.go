package services

import (
	"errors"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService validates staff credentials against the fixed seeded account
// table and issues session tokens. It knows nothing about which routes need
// which role; that lives in the middleware.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

const sessionTTL = 12 * time.Hour

// Session is what a successful login hands back to the terminal.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login matches the username exactly and the password against the stored
// bcrypt hash. Any mismatch, including an unknown user, returns the same
// invalid_credentials error.
func (s *AuthService) Login(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var staff models.StaffUser
	if err := s.DB.Where("username = ?", username).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  staff.Username,
		"role": staff.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JWTSecret())
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Username: staff.Username, Role: staff.Role}, nil
}
