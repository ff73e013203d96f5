package repository

import (
	"catcare/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already taken")

type CareRepository struct {
	db Storage
}

func NewCareRepository(db Storage) *CareRepository {
	return &CareRepository{
		db: db,
	}
}

func (r *CareRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &History{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts a new user. Uniqueness of the email is enforced by the
// unique index on the column, so a violation surfaces here as ErrEmailTaken.
func (r *CareRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *CareRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *CareRepository) SaveHistory(ctx context.Context, record History) error {
	err := r.db.Insert(ctx, &record)
	if err != nil {
		return fmt.Errorf("save history record: %w", err)
	}

	return nil
}

func (r *CareRepository) GetUserHistory(ctx context.Context, userID uint) ([]History, error) {
	records := []History{}
	err := r.db.GetAllBy(ctx, "user_id", userID, &records)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}

	return records, nil
}
