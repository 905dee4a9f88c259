package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/pr"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/user"
)

// UserService handles user business logic.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new user service.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// SetIsActive overwrites the is_active flag of a user and returns the
// updated record. Setting the same value again is a no-op, not an error.
func (s *UserService) SetIsActive(userID string, isActive bool) (*domain.User, error) {
	u, err := user.SetIsActive(s.db, userID, isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return u, nil
}

// GetUserReviews returns all OPEN pull requests where the user is assigned
// as a reviewer.
func (s *UserService) GetUserReviews(userID string) ([]domain.PullRequestShort, error) {
	exists, err := user.Exists(s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	prs, err := pr.GetByReviewer(s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reviews: %w", err)
	}

	openPRs := make([]domain.PullRequestShort, 0)
	for _, p := range prs {
		if p.Status == domain.StatusOpen {
			openPRs = append(openPRs, p)
		}
	}

	return openPRs, nil
}
