package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"youthive/internal/config"
	"youthive/internal/models"
	"youthive/internal/repository"
)

// Known auth failures: handlers map these to fixed localized messages
// and never leak raw backend error text for them.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error
	EnsureProfile(ctx context.Context, userID string) (*models.User, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	events   *EventBroker
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, events *EventBroker) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		events:   events,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	username := req.Username
	if username == "" {
		username = strings.SplitN(req.Email, "@", 2)[0]
	}

	existingUser, err = s.userRepo.GetUserByUsername(ctx, username)
	if err == nil && existingUser != nil {
		return nil, ErrUsernameTaken
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	user := &models.User{
		Email:              req.Email,
		Username:           username,
		FullName:           req.FullName,
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshTokenExpiry,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	s.events.Publish(EventSignedIn, user.Email)

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.UserID, newRefreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to update refresh token: %w", err)
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	// invalidate the refresh token, access tokens simply expire
	err = s.userRepo.UpdateRefreshToken(ctx, userID, "", time.Unix(0, 0))
	if err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	s.events.Publish(EventSignedOut, user.Email)

	return nil
}

// RequestPasswordReset stores a one-time token. An unknown email is
// not an error, existence must not leak to the caller.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	resetToken := uuid.New().String()
	expiry := time.Now().Add(s.cfg.ResetTokenDuration)

	err = s.userRepo.SetResetToken(ctx, user.UserID, resetToken, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return resetToken, nil
}

// UpdatePassword re-authenticates with the current password first.
func (s *authService) UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.userRepo.VerifyPassword(ctx, email, currentPassword)
	if err != nil {
		return ErrInvalidCredentials
	}

	err = s.userRepo.UpdatePassword(ctx, user.UserID, newPassword)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.events.Publish(EventPasswordUpdated, user.Email)

	return nil
}

// EnsureProfile completes a profile lazily on first authenticated
// load: an account without a username gets one derived from the email.
func (s *authService) EnsureProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Username != "" {
		return user, nil
	}

	username := strings.SplitN(user.Email, "@", 2)[0]
	fullName := user.FullName
	if fullName == "" {
		fullName = username
	}

	if err := s.userRepo.UpdateProfile(ctx, user.UserID, username, fullName); err != nil {
		return nil, err
	}

	user.Username = username
	user.FullName = fullName
	return user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"email":    user.Email,
		"isEditor": user.IsEditor,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return token, nil
}

func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	userID, ok1 := claims["userId"].(string)
	email, ok2 := claims["email"].(string)
	isEditor, ok3 := claims["isEditor"].(bool)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("invalid claims format")
	}

	return &models.User{
		UserID:   userID,
		Email:    email,
		IsEditor: isEditor,
	}, nil
}
