package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on unique constraint violations
	ErrDuplicate = errors.New("record already exists")
	// ErrOutstandingBag is returned when a submission is refused because the
	// student already has a bag in process
	ErrOutstandingBag = errors.New("student already has an outstanding bag")
	// ErrStatusChanged is returned when a compare-and-swap status update loses
	// the race against a concurrent edit
	ErrStatusChanged = errors.New("bag status changed concurrently")
	// ErrOwnerFlagUpdate is returned when the owner's outstanding flag could
	// not be cleared together with the status write; the transaction is
	// rolled back before this surfaces
	ErrOwnerFlagUpdate = errors.New("owner flag update failed")
)

// Querier is the query surface shared by *pgxpool.Pool and pgx.Tx, so a
// repository can run either standalone or inside a caller's transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	TokenRepository     *TokenRepository
	StudentRepository   *StudentRepository
	HostelRepository    *HostelRepository
	LaundryRepository   *LaundryRepository
	ItemRepository      *ItemRepository
	MessageRepository   *MessageRepository
	ComplaintRepository *ComplaintRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		TokenRepository:     NewTokenRepository(db),
		StudentRepository:   NewStudentRepository(db),
		HostelRepository:    NewHostelRepository(db),
		LaundryRepository:   NewLaundryRepository(db),
		ItemRepository:      NewItemRepository(db),
		MessageRepository:   NewMessageRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
