package services

// Services defined in this package:
// - AuthService: registration, login and token issuance
// - StudentService: student profiles and hostel reference data
// - LaundryService: bag submission, status lifecycle and history
// - ItemService: lost-and-found board with image upload
// - MessageService: hostel announcements and complaints

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/auth"
	"github.com/hostelops/washline/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	StudentService *StudentService
	LaundryService *LaundryService
	ItemService    *ItemService
	MessageService *MessageService
}

// NewServices initializes all services
func NewServices(
	pool *pgxpool.Pool,
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	imageStore filestorage.ImageStore,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:    NewAuthService(pool, repos.UserRepository, repos.StudentRepository, repos.HostelRepository, repos.TokenRepository, jwtService, logger),
		StudentService: NewStudentService(repos.StudentRepository, repos.HostelRepository, logger),
		LaundryService: NewLaundryService(repos.LaundryRepository, repos.StudentRepository, logger),
		ItemService:    NewItemService(repos.ItemRepository, repos.StudentRepository, imageStore, logger),
		MessageService: NewMessageService(repos.MessageRepository, repos.ComplaintRepository, repos.HostelRepository, repos.StudentRepository, logger),
	}
}
