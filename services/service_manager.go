package services

import (
	"gorm.io/gorm"
)

type ServiceManager struct {
	AuthenticationService AuthenticationService
	UserService           UserService
	OrganizationService   OrganizationService
	ComplaintService      ComplaintService
	AnnouncementService   AnnouncementService
	UploadService         UploadService
}

func NewServiceManager(db *gorm.DB) (*ServiceManager, error) {
	uploadService, err := NewUploadService()
	if err != nil {
		return nil, err
	}

	return &ServiceManager{
		AuthenticationService: NewAuthenticationService(db),
		UserService:           NewUserService(db),
		OrganizationService:   NewOrganizationService(db),
		ComplaintService:      NewComplaintService(db),
		AnnouncementService:   NewAnnouncementService(db),
		UploadService:         uploadService,
	}, nil
}
