package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/utils"
)

type OrganizationService interface {
	RegisterOrganization(ctx context.Context, req *models.RegisterOrganizationRequest) (*models.RegisterOrganizationResponse, error)
	ListOrganizations(ctx context.Context) ([]models.OrganizationOption, error)
}

type organizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) OrganizationService {
	return &organizationService{db: db}
}

// RegisterOrganization creates a rural body together with its first
// admin user. Both writes happen in one transaction, so a failure on
// the admin insert never leaves an orphaned rural body behind.
func (s *organizationService) RegisterOrganization(ctx context.Context, req *models.RegisterOrganizationRequest) (*models.RegisterOrganizationResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 1. Registration numbers are unique across rural bodies
	var existingOrg models.RuralBody
	if err := tx.Where("registration_number = ?", req.RegNumber).First(&existingOrg).Error; err == nil {
		tx.Rollback()
		return nil, ErrRegNumberTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	// 2. The contact person's email must not be registered already
	var existingUser models.User
	if err := tx.Where("email = ?", req.ContactEmail).First(&existingUser).Error; err == nil {
		tx.Rollback()
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	// 3. Create the rural body
	ruralBody := models.RuralBody{
		ID:                 uuid.New(),
		Name:               req.OrgName,
		RegistrationNumber: req.RegNumber,
		OfficialEmail:      req.OrgEmail,
		Phone:              req.OrgPhone,
		Address:            req.OrgAddress,
		District:           req.District,
		State:              req.State,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := tx.Create(&ruralBody).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 4. Hash the admin password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// 5. Create the admin user bound to the new rural body. The
	// demographic fields are placeholders; the registration form only
	// collects contact-person details.
	adminUser := models.User{
		ID:            uuid.New(),
		RuralBodyID:   ruralBody.ID,
		Name:          req.ContactName,
		Email:         req.ContactEmail,
		Password:      string(hashedPassword),
		Phone:         req.ContactPhone,
		Role:          string(constants.RoleAdmin),
		DOB:           time.Now(),
		Gender:        "Not Specified",
		Occupation:    req.ContactPosition,
		MaritalStatus: "Not Specified",
		ParentName:    "Not Specified",
		HouseholdHead: "Not Specified",
		Address:       req.OrgAddress,
		Landmark:      "Not Specified",
		Aadhaar:       "Not Specified",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := tx.Create(&adminUser).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// 6. Send the confirmation email asynchronously
	go func() {
		emailBody := fmt.Sprintf(`
			<h2>Welcome to Gram Seva!</h2>
			<p>Hi %s,</p>
			<p>The rural body <strong>%s</strong> has been registered successfully
			and your administrator account is ready.</p>
			<p>You can now sign in with this email address and manage residents,
			complaints and announcements.</p>
		`, req.ContactName, req.OrgName)

		emailSender := utils.NewEmailSender()
		if err := emailSender.SendEmail(req.ContactEmail, "Rural body registered", emailBody); err != nil {
			log.Printf("[WARN] Failed to send registration email: %v", err)
		}
	}()

	return &models.RegisterOrganizationResponse{
		Message: "Organization registered successfully. Admin user created.",
		OrgID:   ruralBody.ID,
		AdminID: adminUser.ID,
	}, nil
}

// ListOrganizations returns id+name pairs for the public registration
// dropdown.
func (s *organizationService) ListOrganizations(ctx context.Context) ([]models.OrganizationOption, error) {
	var options []models.OrganizationOption
	if err := s.db.WithContext(ctx).
		Model(&models.RuralBody{}).
		Select("id, name").
		Order("name asc").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
