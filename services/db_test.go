package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
)

// newTestDB opens an in-memory database with the full schema. A
// single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&models.RuralBody{},
		&models.User{},
		&models.Complaint{},
		&models.Vote{},
		&models.Announcement{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedRuralBody(t *testing.T, db *gorm.DB, regNumber string) *models.RuralBody {
	t.Helper()
	rb := &models.RuralBody{
		ID:                 uuid.New(),
		Name:               "Rampur Gram Panchayat",
		RegistrationNumber: regNumber,
		OfficialEmail:      "office@rampur.example",
		Address:            "Main Road, Rampur",
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := db.Create(rb).Error; err != nil {
		t.Fatalf("seed rural body: %v", err)
	}
	return rb
}

func seedUser(t *testing.T, db *gorm.DB, ruralBodyID uuid.UUID, email string, role constants.RoleEnum) *models.User {
	t.Helper()
	u := &models.User{
		ID:            uuid.New(),
		RuralBodyID:   ruralBodyID,
		Name:          "Test Resident",
		Email:         email,
		Password:      "hashed",
		Phone:         "9999999999",
		Role:          string(role),
		DOB:           time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:        "female",
		Occupation:    "farmer",
		MaritalStatus: "married",
		ParentName:    "Parent",
		HouseholdHead: "Head",
		Address:       "Village Road",
		Landmark:      "Near temple",
		Aadhaar:       "123412341234",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func asRequester(u *models.User) Requester {
	return Requester{UserID: u.ID, RuralBodyID: u.RuralBodyID, Role: constants.RoleEnum(u.Role)}
}

func countVotes(t *testing.T, db *gorm.DB, complaintID uuid.UUID) []models.Vote {
	t.Helper()
	var votes []models.Vote
	if err := db.Where("complaint_id = ?", complaintID).Find(&votes).Error; err != nil {
		t.Fatalf("load votes: %v", err)
	}
	return votes
}
