package models

import (
	"time"

	"github.com/google/uuid"
)

type AuthResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	RuralBodyID uuid.UUID `json:"ruralBodyId"`
	Token       string    `json:"token"`
}

type RegisterOrganizationResponse struct {
	Message string    `json:"message"`
	OrgID   uuid.UUID `json:"orgId"`
	AdminID uuid.UUID `json:"adminId"`
}

// OrganizationOption is the trimmed listing used by the registration
// dropdown; never exposes contact details.
type OrganizationOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ComplaintResponse decorates a complaint with the poster's name and
// read-time vote tallies.
type ComplaintResponse struct {
	Complaint
	PostedByName string `json:"postedByName,omitempty"`
	Upvotes      int    `json:"upvotes"`
	Downvotes    int    `json:"downvotes"`
}

type UserStatsResponse struct {
	TotalComplaints      int64 `json:"totalComplaints"`
	InProgressComplaints int64 `json:"inProgressComplaints"`
	ResolvedComplaints   int64 `json:"resolvedComplaints"`
}

type AdminStatsResponse struct {
	TotalResidents     int64 `json:"totalResidents"`
	TotalComplaints    int64 `json:"totalComplaints"`
	PendingComplaints  int64 `json:"pendingComplaints"`
	ResolvedComplaints int64 `json:"resolvedComplaints"`
}

type AnnouncementResponse struct {
	Announcement
	PostedByName string `json:"postedByName,omitempty"`
}

type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	RuralBodyID   uuid.UUID `json:"ruralBodyId"`
	DOB           time.Time `json:"dob"`
	Gender        string    `json:"gender"`
	Occupation    string    `json:"occupation"`
	MaritalStatus string    `json:"maritalStatus"`
	ParentName    string    `json:"parentName"`
	HouseholdHead string    `json:"householdHead"`
	Address       string    `json:"address"`
	Landmark      string    `json:"landmark"`
	Aadhaar       string    `json:"aadhaar"`
	VoterID       *string   `json:"voterId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewProfileResponse strips the password hash from a user record.
func NewProfileResponse(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          u.Role,
		RuralBodyID:   u.RuralBodyID,
		DOB:           u.DOB,
		Gender:        u.Gender,
		Occupation:    u.Occupation,
		MaritalStatus: u.MaritalStatus,
		ParentName:    u.ParentName,
		HouseholdHead: u.HouseholdHead,
		Address:       u.Address,
		Landmark:      u.Landmark,
		Aadhaar:       u.Aadhaar,
		VoterID:       u.VoterID,
		CreatedAt:     u.CreatedAt,
	}
}
