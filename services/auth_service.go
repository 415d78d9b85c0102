package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/repository"
	"foodigo/utils"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

// AuthService owns register/login/social login for users and admins.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Secret() string     { return s.jwtSecret }
func (s *AuthService) TTL() time.Duration { return s.jwtTTL }

type RegisterIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Password: string(hashed),
		Status:   "active",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	// social-only accounts carry an empty password and cannot log in here
	if user.Password == "" {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != "active" {
		return "", nil, errors.New("Your account is deactivated")
	}

	token, err := s.token(user.ID, "user")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

type SocialLoginIn struct {
	SocialID   string `json:"social_id" binding:"required"`
	SocialType string `json:"social_type" binding:"required,oneof=google facebook"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name"`
	Image      string `json:"image"`
}

// SocialLogin finds the account by provider identity or email, creating one
// with an empty password when neither matches.
func (s *AuthService) SocialLogin(in *SocialLoginIn) (string, *entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.userRepo.FindBySocial(in.SocialID, in.SocialType, email)
	if err != nil {
		return "", nil, err
	}

	if user == nil {
		user = &entity.User{
			Name:       strings.TrimSpace(in.Name),
			Email:      email,
			Image:      in.Image,
			SocialID:   in.SocialID,
			SocialType: in.SocialType,
			Status:     "active",
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", nil, err
		}
	} else if user.SocialID != in.SocialID || user.SocialType != in.SocialType {
		// keep the linkage on the provider that signed in last
		updates := map[string]any{"social_id": in.SocialID, "social_type": in.SocialType}
		if err := s.userRepo.Update(user.ID, updates); err != nil {
			return "", nil, err
		}
		user.SocialID = in.SocialID
		user.SocialType = in.SocialType
	}

	if user.Status != "active" {
		return "", nil, errors.New("Your account is deactivated")
	}

	token, err := s.token(user.ID, "user")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("Old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.Update(userID, map[string]any{"password": string(hashed)})
}

// SaveDeviceToken upserts the push registration per user+device.
func (s *AuthService) SaveDeviceToken(userID uint, deviceToken, fcmToken, deviceType string) error {
	var existing entity.DeviceToken
	err := s.DB.Where("user_id = ? AND device_token = ?", userID, deviceToken).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&entity.DeviceToken{
			UserID:      userID,
			DeviceToken: deviceToken,
			FcmToken:    fcmToken,
			DeviceType:  deviceType,
		}).Error
	}
	if err != nil {
		return err
	}
	return s.DB.Model(&existing).
		Updates(map[string]any{"fcm_token": fcmToken, "device_type": deviceType}).Error
}

// Logout drops the device registration so the device stops receiving pushes.
func (s *AuthService) Logout(userID uint, deviceToken string) error {
	q := s.DB.Where("user_id = ?", userID)
	if deviceToken != "" {
		q = q.Where("device_token = ?", deviceToken)
	}
	return q.Delete(&entity.DeviceToken{}).Error
}

// AdminLogin authenticates against the admins table with role "admin".
func (s *AuthService) AdminLogin(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin entity.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.token(admin.ID, "admin")
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

func (s *AuthService) token(id uint, role string) (string, error) {
	return utils.GenerateToken(id, role, s.jwtSecret, s.jwtTTL)
}
