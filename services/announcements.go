package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/models"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req Requester, body *models.CreateAnnouncementRequest) (*models.AnnouncementResponse, error)
	GetAnnouncements(ctx context.Context, req Requester) ([]models.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, req Requester, id uuid.UUID) error
}

type announcementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) AnnouncementService {
	return &announcementService{db: db}
}

func toAnnouncementResponse(a models.Announcement) models.AnnouncementResponse {
	resp := models.AnnouncementResponse{Announcement: a}
	if a.PostedBy != nil {
		resp.PostedByName = a.PostedBy.Name
		resp.PostedBy = nil
	}
	return resp
}

// ======
// CreateAnnouncement
// ======
func (s *announcementService) CreateAnnouncement(ctx context.Context, req Requester, body *models.CreateAnnouncementRequest) (*models.AnnouncementResponse, error) {
	announcement := models.Announcement{
		ID:          uuid.New(),
		Title:       body.Title,
		Content:     body.Content,
		PostedByID:  req.UserID,
		RuralBodyID: req.RuralBodyID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&announcement).Error; err != nil {
		return nil, err
	}

	resp := toAnnouncementResponse(announcement)
	return &resp, nil
}

// ======
// GetAnnouncements
// ======
// Residents and admins both see their own rural body's notices.
func (s *announcementService) GetAnnouncements(ctx context.Context, req Requester) ([]models.AnnouncementResponse, error) {
	var announcements []models.Announcement
	err := s.db.WithContext(ctx).
		Preload("PostedBy").
		Where("rural_body_id = ?", req.RuralBodyID).
		Order("created_at desc").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}

	responses := make([]models.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, toAnnouncementResponse(a))
	}
	return responses, nil
}

// ======
// DeleteAnnouncement
// ======
func (s *announcementService) DeleteAnnouncement(ctx context.Context, req Requester, id uuid.UUID) error {
	var announcement models.Announcement
	if err := s.db.WithContext(ctx).First(&announcement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanAccess(req, Resource{RuralBodyID: announcement.RuralBodyID}, ScopeTenant) {
		return ErrNotFound
	}

	return s.db.WithContext(ctx).Delete(&announcement).Error
}
