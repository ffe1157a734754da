package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/utils"
)

type AuthenticationService interface {
	Register(ctx context.Context, req *models.RegisterUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type authenticationService struct {
	db *gorm.DB
}

func NewAuthenticationService(db *gorm.DB) AuthenticationService {
	return &authenticationService{db: db}
}

// ======
// Register
// ======
func (s *authenticationService) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.AuthResponse, error) {
	db := s.db.WithContext(ctx)

	// 1. Reject duplicate emails up front
	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. The selected rural body must exist
	var ruralBody models.RuralBody
	if err := db.First(&ruralBody, "id = ?", req.RuralBodyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRuralBody
		}
		return nil, err
	}

	// 3. Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 4. Create resident
	user := models.User{
		ID:            uuid.New(),
		RuralBodyID:   ruralBody.ID,
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashedPassword),
		Phone:         req.Phone,
		Role:          string(constants.RoleUser),
		DOB:           req.DOB,
		Gender:        req.Gender,
		Occupation:    req.Occupation,
		MaritalStatus: req.MaritalStatus,
		ParentName:    req.ParentName,
		HouseholdHead: req.HouseholdHead,
		Address:       req.Address,
		Landmark:      req.Landmark,
		Aadhaar:       req.Aadhaar,
		VoterID:       req.VoterID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(utils.JWTUser{
		UserID:      user.ID.String(),
		RuralBodyID: user.RuralBodyID.String(),
		Role:        user.Role,
	})
	if err != nil {
		return nil, errors.New("failed to generate access token")
	}

	return &models.AuthResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		RuralBodyID: user.RuralBodyID,
		Token:       token,
	}, nil
}

// ======
// Login
// ======
func (s *authenticationService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	// Never reveal whether the email or the password was wrong.
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(utils.JWTUser{
		UserID:      user.ID.String(),
		RuralBodyID: user.RuralBodyID.String(),
		Role:        user.Role,
	})
	if err != nil {
		return nil, errors.New("failed to generate access token")
	}

	return &models.AuthResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		RuralBodyID: user.RuralBodyID,
		Token:       token,
	}, nil
}
