package handlers

import (
	userRepoPkg "tutorhub/database/repository/user"
	"tutorhub/services/admin"
	"tutorhub/services/booking"
	"tutorhub/services/course"
	"tutorhub/services/message"
	"tutorhub/services/storage"
	"tutorhub/services/tutor"
	"tutorhub/services/user"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User    *UserHandler
	Tutor   *TutorHandler
	Course  *CourseHandler
	Booking *BookingHandler
	Message *MessageHandler
	Admin   *AdminHandler
}

// NewHandlerBundle wires every handler against its service.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	userSvc user.UserService,
	tutorSvc tutor.TutorService,
	courseSvc course.CourseService,
	bookingSvc booking.BookingService,
	messageSvc message.MessageService,
	adminSvc admin.AdminService,
	storageSvc storage.StorageService,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,
		User:     &UserHandler{Service: userSvc},
		Tutor:    &TutorHandler{Service: tutorSvc, Storage: storageSvc},
		Course:   &CourseHandler{Service: courseSvc},
		Booking:  &BookingHandler{Service: bookingSvc},
		Message:  &MessageHandler{Service: messageSvc},
		Admin:    &AdminHandler{Service: adminSvc, Tutors: tutorSvc, Users: userSvc, Storage: storageSvc},
	}
}
