package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterUserRequest struct {
	Name          string    `json:"name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Password      string    `json:"password" binding:"required,min=6"`
	Phone         string    `json:"phone" binding:"required"`
	RuralBodyID   uuid.UUID `json:"ruralBodyId" binding:"required"`
	DOB           time.Time `json:"dob" binding:"required"`
	Gender        string    `json:"gender" binding:"required"`
	Occupation    string    `json:"occupation" binding:"required"`
	MaritalStatus string    `json:"maritalStatus" binding:"required"`
	ParentName    string    `json:"parentName" binding:"required"`
	HouseholdHead string    `json:"householdHead" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	Landmark      string    `json:"landmark" binding:"required"`
	Aadhaar       string    `json:"aadhaar" binding:"required"`
	VoterID       *string   `json:"voterId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email         string  `json:"email"`
	Occupation    string  `json:"occupation"`
	MaritalStatus string  `json:"maritalStatus"`
	Address       string  `json:"address"`
	VoterID       *string `json:"voterId"`
}

type RegisterOrganizationRequest struct {
	OrgName         string `json:"orgName" binding:"required"`
	RegNumber       string `json:"regNumber" binding:"required"`
	OrgEmail        string `json:"orgEmail" binding:"required,email"`
	OrgPhone        string `json:"orgPhone"`
	OrgAddress      string `json:"orgAddress" binding:"required"`
	District        string `json:"district"`
	State           string `json:"state"`
	ContactName     string `json:"contactName" binding:"required"`
	ContactPosition string `json:"contactPosition" binding:"required"`
	ContactEmail    string `json:"contactEmail" binding:"required,email"`
	ContactPhone    string `json:"contactPhone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

type CreateComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

// UpdateComplaintRequest carries the owner-editable fields; empty
// fields keep their current value.
type UpdateComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VoteRequest struct {
	VoteType string `json:"voteType" binding:"required"`
}

type UpdateResidentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Occupation    string `json:"occupation"`
	MaritalStatus string `json:"maritalStatus"`
	Address       string `json:"address"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
