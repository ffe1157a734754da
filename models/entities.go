package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// RuralBody (tenant)
// ===============================
type RuralBody struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(255);not null" json:"name"`
	RegistrationNumber string    `gorm:"type:varchar(100);unique;not null" json:"registrationNumber"`
	OfficialEmail      string    `gorm:"type:varchar(255);not null" json:"officialEmail"`
	Phone              string    `gorm:"type:varchar(20)" json:"phone"`
	Address            string    `gorm:"type:text" json:"address"`
	District           string    `gorm:"type:varchar(100)" json:"district"`
	State              string    `gorm:"type:varchar(100)" json:"state"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ===============================
// User
// ===============================
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RuralBodyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"ruralBodyId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"` // hashed
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"` // user / admin
	DOB           time.Time `gorm:"not null" json:"dob"`
	Gender        string    `gorm:"type:varchar(30);not null" json:"gender"`
	Occupation    string    `gorm:"type:varchar(100);not null" json:"occupation"`
	MaritalStatus string    `gorm:"type:varchar(30);not null" json:"maritalStatus"`
	ParentName    string    `gorm:"type:varchar(255);not null" json:"parentName"`
	HouseholdHead string    `gorm:"type:varchar(255);not null" json:"householdHead"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Landmark      string    `gorm:"type:varchar(255);not null" json:"landmark"`
	Aadhaar       string    `gorm:"type:varchar(20);not null" json:"aadhaar"`
	VoterID       *string   `gorm:"type:varchar(20)" json:"voterId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ===============================
// Complaint
// ===============================
type Complaint struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(30);not null" json:"category"`
	Severity    string    `gorm:"type:varchar(10);not null" json:"severity"`
	ImageURL    string    `gorm:"type:text;not null" json:"imageUrl"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending / in_progress / resolved
	PostedByID  uuid.UUID `gorm:"type:uuid;not null;index" json:"postedById"`
	PostedBy    *User     `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`
	RuralBodyID uuid.UUID `gorm:"type:uuid;not null;index" json:"ruralBodyId"`
	Votes       []Vote    `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"votes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ===============================
// Vote
// ===============================
// One row per (complaint, voter); the unique index keeps the
// at-most-one-vote invariant under concurrent casts.
type Vote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_complaint_user" json:"complaintId"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_complaint_user" json:"userId"`
	VoteType    string    `gorm:"type:varchar(10);not null" json:"voteType"` // upvote / downvote
	CreatedAt   time.Time `json:"createdAt"`
}

// ===============================
// Announcement
// ===============================
type Announcement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PostedByID  uuid.UUID `gorm:"type:uuid;not null" json:"postedById"`
	PostedBy    *User     `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`
	RuralBodyID uuid.UUID `gorm:"type:uuid;not null;index" json:"ruralBodyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
