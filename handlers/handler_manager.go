package handlers

import (
	"github.com/gramseva/gramseva-backend/services"
)

type HandlerManager struct {
	AuthenticationHandler *AuthenticationHandler
	UserHandler           *UserHandler
	OrganizationHandler   *OrganizationHandler
	ComplaintHandler      *ComplaintHandler
	AnnouncementHandler   *AnnouncementHandler
	UploadHandler         *UploadHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		AuthenticationHandler: NewAuthenticationHandler(sm.AuthenticationService),
		UserHandler:           NewUserHandler(sm.UserService),
		OrganizationHandler:   NewOrganizationHandler(sm.OrganizationService),
		ComplaintHandler:      NewComplaintHandler(sm.ComplaintService),
		AnnouncementHandler:   NewAnnouncementHandler(sm.AnnouncementService),
		UploadHandler:         NewUploadHandler(sm.UploadService),
	}
}
