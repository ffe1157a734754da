package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
)

type UserService interface {
	GetProfile(ctx context.Context, req Requester) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req Requester, body *models.UpdateProfileRequest) (*models.ProfileResponse, error)
	GetResidents(ctx context.Context, req Requester) ([]models.ProfileResponse, error)
	GetResidentByID(ctx context.Context, req Requester, id uuid.UUID) (*models.ProfileResponse, error)
	UpdateResident(ctx context.Context, req Requester, id uuid.UUID, body *models.UpdateResidentRequest) (*models.ProfileResponse, error)
	DeleteResident(ctx context.Context, req Requester, id uuid.UUID) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) loadUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ======
// GetProfile
// ======
func (s *userService) GetProfile(ctx context.Context, req Requester) (*models.ProfileResponse, error) {
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return models.NewProfileResponse(user), nil
}

// ======
// UpdateProfile
// ======
// Self-service updates touch a fixed allow-list; name, aadhaar, dob
// and the rural body stay immutable through this path. The voter id
// can be set once and never changed afterwards.
func (s *userService) UpdateProfile(ctx context.Context, req Requester, body *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if body.Email != "" && body.Email != user.Email {
		var existing models.User
		if err := s.db.WithContext(ctx).Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = body.Email
	}
	if body.Occupation != "" {
		user.Occupation = body.Occupation
	}
	if body.MaritalStatus != "" {
		user.MaritalStatus = body.MaritalStatus
	}
	if body.Address != "" {
		user.Address = body.Address
	}
	if body.VoterID != nil && *body.VoterID != "" && user.VoterID == nil {
		user.VoterID = body.VoterID
	}
	user.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return models.NewProfileResponse(user), nil
}

// ======
// GetResidents
// ======
// Admins only ever see residents of their own rural body; fellow
// admins never appear in the listing.
func (s *userService) GetResidents(ctx context.Context, req Requester) ([]models.ProfileResponse, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("rural_body_id = ? AND role = ?", req.RuralBodyID, constants.RoleUser).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	residents := make([]models.ProfileResponse, 0, len(users))
	for i := range users {
		residents = append(residents, *models.NewProfileResponse(&users[i]))
	}
	return residents, nil
}

// ======
// GetResidentByID
// ======
func (s *userService) GetResidentByID(ctx context.Context, req Requester, id uuid.UUID) (*models.ProfileResponse, error) {
	resident, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(req, Resource{RuralBodyID: resident.RuralBodyID}, ScopeTenant) {
		return nil, ErrNotFound
	}
	return models.NewProfileResponse(resident), nil
}

// ======
// UpdateResident
// ======
func (s *userService) UpdateResident(ctx context.Context, req Requester, id uuid.UUID, body *models.UpdateResidentRequest) (*models.ProfileResponse, error) {
	resident, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(req, Resource{RuralBodyID: resident.RuralBodyID}, ScopeTenant) {
		return nil, ErrNotFound
	}

	if body.Name != "" {
		resident.Name = body.Name
	}
	if body.Email != "" && body.Email != resident.Email {
		var existing models.User
		if err := s.db.WithContext(ctx).Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		resident.Email = body.Email
	}
	if body.Phone != "" {
		resident.Phone = body.Phone
	}
	if body.Occupation != "" {
		resident.Occupation = body.Occupation
	}
	if body.MaritalStatus != "" {
		resident.MaritalStatus = body.MaritalStatus
	}
	if body.Address != "" {
		resident.Address = body.Address
	}
	resident.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(resident).Error; err != nil {
		return nil, err
	}
	return models.NewProfileResponse(resident), nil
}

// ======
// DeleteResident
// ======
func (s *userService) DeleteResident(ctx context.Context, req Requester, id uuid.UUID) error {
	resident, err := s.loadUser(ctx, id)
	if err != nil {
		return err
	}
	if !CanAccess(req, Resource{RuralBodyID: resident.RuralBodyID}, ScopeTenant) {
		return ErrNotFound
	}
	if resident.Role == string(constants.RoleAdmin) {
		return ErrAdminUndeletable
	}
	return s.db.WithContext(ctx).Delete(resident).Error
}
