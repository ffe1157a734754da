package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/models"
)

func orgRequest(regNumber, contactEmail string) *models.RegisterOrganizationRequest {
	return &models.RegisterOrganizationRequest{
		OrgName:         "Rampur Gram Panchayat",
		RegNumber:       regNumber,
		OrgEmail:        "office@rampur.example",
		OrgPhone:        "9000000000",
		OrgAddress:      "Panchayat Bhavan, Rampur",
		District:        "Sitapur",
		State:           "Uttar Pradesh",
		ContactName:     "Sarpanch Devi",
		ContactPosition: "Sarpanch",
		ContactEmail:    contactEmail,
		ContactPhone:    "9111111111",
		Password:        "secret123",
	}
}

func TestRegisterOrganization_CreatesBodyAndAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)

	resp, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-100", "sarpanch@rampur.example"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var body models.RuralBody
	if err := db.First(&body, "id = ?", resp.OrgID).Error; err != nil {
		t.Fatalf("rural body not persisted: %v", err)
	}
	if body.RegistrationNumber != "REG-100" {
		t.Errorf("registration number = %q, want REG-100", body.RegistrationNumber)
	}

	var admin models.User
	if err := db.First(&admin, "id = ?", resp.AdminID).Error; err != nil {
		t.Fatalf("admin user not persisted: %v", err)
	}
	if admin.Role != string(constants.RoleAdmin) {
		t.Errorf("role = %q, want admin", admin.Role)
	}
	if admin.RuralBodyID != body.ID {
		t.Errorf("admin bound to %s, want %s", admin.RuralBodyID, body.ID)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")) != nil {
		t.Error("stored password is not the bcrypt hash of the submitted one")
	}
}

func TestRegisterOrganization_DuplicateRegNumberRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)

	if _, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-100", "sarpanch@rampur.example")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-100", "other@rampur.example"))
	if !errors.Is(err, ErrRegNumberTaken) {
		t.Fatalf("err = %v, want ErrRegNumberTaken", err)
	}

	// The failed attempt must not leave a second body or a stray admin.
	var bodies int64
	db.Model(&models.RuralBody{}).Count(&bodies)
	if bodies != 1 {
		t.Errorf("rural bodies = %d, want 1", bodies)
	}
	var users int64
	db.Model(&models.User{}).Where("email = ?", "other@rampur.example").Count(&users)
	if users != 0 {
		t.Errorf("stray admin persisted for the rejected registration")
	}
}

func TestRegisterOrganization_DuplicateContactEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)

	if _, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-100", "sarpanch@rampur.example")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-200", "sarpanch@rampur.example"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	// Nothing of the rejected registration survives.
	var bodies int64
	db.Model(&models.RuralBody{}).Where("registration_number = ?", "REG-200").Count(&bodies)
	if bodies != 0 {
		t.Errorf("orphaned rural body persisted for the rejected registration")
	}
}

func TestListOrganizations_SortedOptions(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)

	second := orgRequest("REG-200", "b@example.com")
	second.OrgName = "Basti Gram Panchayat"
	if _, err := svc.RegisterOrganization(context.Background(), second); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterOrganization(context.Background(), orgRequest("REG-100", "a@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	options, err := svc.ListOrganizations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Name != "Basti Gram Panchayat" || options[1].Name != "Rampur Gram Panchayat" {
		t.Errorf("options out of name order: %q, %q", options[0].Name, options[1].Name)
	}
}
