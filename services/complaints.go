package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/utils"
)

type ComplaintService interface {
	CreateComplaint(ctx context.Context, req Requester, body *models.CreateComplaintRequest) (*models.ComplaintResponse, error)
	GetMyComplaints(ctx context.Context, req Requester) ([]models.ComplaintResponse, error)
	GetMyStats(ctx context.Context, req Requester) (*models.UserStatsResponse, error)
	GetCommunityComplaints(ctx context.Context, req Requester) ([]models.ComplaintResponse, error)
	GetComplaintByID(ctx context.Context, req Requester, id uuid.UUID) (*models.ComplaintResponse, error)
	UpdateComplaint(ctx context.Context, req Requester, id uuid.UUID, body *models.UpdateComplaintRequest) (*models.ComplaintResponse, error)
	DeleteComplaint(ctx context.Context, req Requester, id uuid.UUID) error
	CastVote(ctx context.Context, req Requester, id uuid.UUID, voteType string) (*models.ComplaintResponse, error)
	GetComplaintsForAdmin(ctx context.Context, req Requester) ([]models.ComplaintResponse, error)
	GetAdminStats(ctx context.Context, req Requester) (*models.AdminStatsResponse, error)
	UpdateStatus(ctx context.Context, req Requester, id uuid.UUID, status string) (*models.ComplaintResponse, error)
}

type complaintService struct {
	db *gorm.DB
}

func NewComplaintService(db *gorm.DB) ComplaintService {
	return &complaintService{db: db}
}

// TallyVotes aggregates a complaint's vote rows at read time.
func TallyVotes(votes []models.Vote) (upvotes, downvotes int) {
	for _, v := range votes {
		switch constants.VoteType(v.VoteType) {
		case constants.VoteUp:
			upvotes++
		case constants.VoteDown:
			downvotes++
		}
	}
	return upvotes, downvotes
}

func toComplaintResponse(c models.Complaint) models.ComplaintResponse {
	up, down := TallyVotes(c.Votes)
	resp := models.ComplaintResponse{Complaint: c, Upvotes: up, Downvotes: down}
	if c.PostedBy != nil {
		resp.PostedByName = c.PostedBy.Name
		resp.PostedBy = nil
	}
	return resp
}

func toComplaintResponses(complaints []models.Complaint) []models.ComplaintResponse {
	responses := make([]models.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, toComplaintResponse(c))
	}
	return responses
}

func (s *complaintService) loadComplaint(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.WithContext(ctx).
		Preload("Votes").
		Preload("PostedBy").
		First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// ======
// CreateComplaint
// ======
func (s *complaintService) CreateComplaint(ctx context.Context, req Requester, body *models.CreateComplaintRequest) (*models.ComplaintResponse, error) {
	if !constants.IsValidCategory(body.Category) {
		return nil, ErrInvalidCategory
	}
	if !constants.IsValidSeverity(body.Severity) {
		return nil, ErrInvalidSeverity
	}

	complaint := models.Complaint{
		ID:          uuid.New(),
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Severity:    body.Severity,
		ImageURL:    body.ImageURL,
		Location:    body.Location,
		Status:      string(constants.StatusPending),
		PostedByID:  req.UserID,
		RuralBodyID: req.RuralBodyID,
		Votes:       []models.Vote{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&complaint).Error; err != nil {
		return nil, err
	}

	resp := toComplaintResponse(complaint)
	return &resp, nil
}

// ======
// GetMyComplaints
// ======
func (s *complaintService) GetMyComplaints(ctx context.Context, req Requester) ([]models.ComplaintResponse, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Preload("Votes").
		Where("posted_by_id = ?", req.UserID).
		Order("created_at desc").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return toComplaintResponses(complaints), nil
}

// ======
// GetMyStats
// ======
func (s *complaintService) GetMyStats(ctx context.Context, req Requester) (*models.UserStatsResponse, error) {
	db := s.db.WithContext(ctx)

	stats := &models.UserStatsResponse{}
	if err := db.Model(&models.Complaint{}).
		Where("posted_by_id = ?", req.UserID).
		Count(&stats.TotalComplaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).
		Where("posted_by_id = ? AND status = ?", req.UserID, constants.StatusInProgress).
		Count(&stats.InProgressComplaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).
		Where("posted_by_id = ? AND status = ?", req.UserID, constants.StatusResolved).
		Count(&stats.ResolvedComplaints).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// ======
// GetCommunityComplaints
// ======
func (s *complaintService) GetCommunityComplaints(ctx context.Context, req Requester) ([]models.ComplaintResponse, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Preload("Votes").
		Preload("PostedBy").
		Where("rural_body_id = ?", req.RuralBodyID).
		Order("created_at desc").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return toComplaintResponses(complaints), nil
}

// ======
// GetComplaintByID
// ======
func (s *complaintService) GetComplaintByID(ctx context.Context, req Requester, id uuid.UUID) (*models.ComplaintResponse, error) {
	complaint, err := s.loadComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanAccess(req, Resource{RuralBodyID: complaint.RuralBodyID, OwnerID: &complaint.PostedByID}, ScopeOwner) {
		return nil, ErrNotFound
	}

	resp := toComplaintResponse(*complaint)
	return &resp, nil
}

// ======
// UpdateComplaint
// ======
func (s *complaintService) UpdateComplaint(ctx context.Context, req Requester, id uuid.UUID, body *models.UpdateComplaintRequest) (*models.ComplaintResponse, error) {
	complaint, err := s.loadComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	// Owner only, even for admins of the same rural body.
	if complaint.PostedByID != req.UserID {
		return nil, ErrNotFound
	}
	if complaint.Status != string(constants.StatusPending) {
		return nil, ErrStateConflict
	}

	if body.Title != "" {
		complaint.Title = body.Title
	}
	if body.Description != "" {
		complaint.Description = body.Description
	}
	if body.Location != "" {
		complaint.Location = body.Location
	}
	if body.ImageURL != "" {
		complaint.ImageURL = body.ImageURL
	}
	complaint.UpdatedAt = time.Now()

	// Column-scoped update; the preloaded votes and poster must not
	// be upserted along with the edit.
	if err := s.db.WithContext(ctx).Model(&models.Complaint{ID: complaint.ID}).
		Updates(map[string]interface{}{
			"title":       complaint.Title,
			"description": complaint.Description,
			"location":    complaint.Location,
			"image_url":   complaint.ImageURL,
			"updated_at":  complaint.UpdatedAt,
		}).Error; err != nil {
		return nil, err
	}

	resp := toComplaintResponse(*complaint)
	return &resp, nil
}

// ======
// DeleteComplaint
// ======
func (s *complaintService) DeleteComplaint(ctx context.Context, req Requester, id uuid.UUID) error {
	complaint, err := s.loadComplaint(ctx, id)
	if err != nil {
		return err
	}

	if complaint.PostedByID != req.UserID {
		return ErrNotFound
	}
	if complaint.Status != string(constants.StatusPending) {
		return ErrStateConflict
	}

	// Votes go with the complaint via the FK cascade.
	return s.db.WithContext(ctx).Delete(complaint).Error
}

// ======
// CastVote
// ======
// Toggle semantics: no existing vote appends, a repeat of the same
// type retracts, a different type switches in place. The conditional
// delete plus upsert run in one transaction against the unique
// (complaint_id, user_id) index, so concurrent casts cannot produce a
// second row for the same voter.
func (s *complaintService) CastVote(ctx context.Context, req Requester, id uuid.UUID, voteType string) (*models.ComplaintResponse, error) {
	if !constants.IsValidVoteType(voteType) {
		return nil, ErrInvalidVoteType
	}

	complaint, err := s.loadComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	// Voting is open to the whole rural body, not just the owner.
	if !CanAccess(req, Resource{RuralBodyID: complaint.RuralBodyID}, ScopeTenant) {
		return nil, ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("complaint_id = ? AND user_id = ? AND vote_type = ?", id, req.UserID, voteType).
			Delete(&models.Vote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// Same type again: the vote is retracted.
			return nil
		}

		vote := models.Vote{
			ID:          uuid.New(),
			ComplaintID: id,
			UserID:      req.UserID,
			VoteType:    voteType,
			CreatedAt:   time.Now(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "complaint_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote_type"}),
		}).Create(&vote).Error
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.loadComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toComplaintResponse(*updated)
	return &resp, nil
}

// ======
// GetComplaintsForAdmin
// ======
func (s *complaintService) GetComplaintsForAdmin(ctx context.Context, req Requester) ([]models.ComplaintResponse, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Preload("Votes").
		Preload("PostedBy").
		Where("rural_body_id = ?", req.RuralBodyID).
		Order("created_at desc").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return toComplaintResponses(complaints), nil
}

// ======
// GetAdminStats
// ======
func (s *complaintService) GetAdminStats(ctx context.Context, req Requester) (*models.AdminStatsResponse, error) {
	db := s.db.WithContext(ctx)

	stats := &models.AdminStatsResponse{}
	if err := db.Model(&models.User{}).
		Where("rural_body_id = ? AND role = ?", req.RuralBodyID, constants.RoleUser).
		Count(&stats.TotalResidents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).
		Where("rural_body_id = ?", req.RuralBodyID).
		Count(&stats.TotalComplaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).
		Where("rural_body_id = ? AND status = ?", req.RuralBodyID, constants.StatusPending).
		Count(&stats.PendingComplaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).
		Where("rural_body_id = ? AND status = ?", req.RuralBodyID, constants.StatusResolved).
		Count(&stats.ResolvedComplaints).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// ======
// UpdateStatus
// ======
// Any of the three literals is accepted in any state; the lifecycle
// is deliberately permissive and admin-driven.
func (s *complaintService) UpdateStatus(ctx context.Context, req Requester, id uuid.UUID, status string) (*models.ComplaintResponse, error) {
	if !constants.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.loadComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanAccess(req, Resource{RuralBodyID: complaint.RuralBodyID}, ScopeTenant) {
		return nil, ErrNotFound
	}

	complaint.Status = status
	complaint.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Model(complaint).
		Updates(map[string]interface{}{"status": complaint.Status, "updated_at": complaint.UpdatedAt}).Error; err != nil {
		return nil, err
	}

	// Notify the owner asynchronously; a mail failure never fails the request.
	if complaint.PostedBy != nil && complaint.PostedBy.Email != "" {
		owner := complaint.PostedBy
		title := complaint.Title
		go func() {
			emailBody := fmt.Sprintf(`
				<h2>Complaint status updated</h2>
				<p>Hi %s,</p>
				<p>The status of your complaint <strong>%s</strong> is now <strong>%s</strong>.</p>
			`, owner.Name, title, status)

			emailSender := utils.NewEmailSender()
			if err := emailSender.SendEmail(owner.Email, "Complaint status updated", emailBody); err != nil {
				log.Printf("[WARN] Failed to send status email: %v", err)
			}
		}()
	}

	resp := toComplaintResponse(*complaint)
	return &resp, nil
}
