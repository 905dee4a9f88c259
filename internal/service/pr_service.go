package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/pr"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/user"
)

// PRService handles pull request business logic.
type PRService struct {
	db       *sql.DB
	assigner *ReviewerAssigner
}

// NewPRService creates a new pull request service.
func NewPRService(db *sql.DB, assigner *ReviewerAssigner) *PRService {
	return &PRService{db: db, assigner: assigner}
}

// CreatePR creates a new pull request and assigns up to MaxReviewers active
// teammates of the author as reviewers.
func (s *PRService) CreatePR(prID, prName, authorID string) (*domain.PullRequest, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := pr.Exists(tx, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pull request existence: %w", err)
	}
	if exists {
		return nil, ErrPRExists
	}

	author, err := user.Get(tx, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPRAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	teammates, err := user.GetActiveTeammates(tx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teammates: %w", err)
	}

	reviewers, err := s.assigner.SelectReviewers(teammates)
	if err != nil {
		return nil, fmt.Errorf("failed to select reviewers: %w", err)
	}

	newPR := &domain.PullRequest{
		PullRequestID:   prID,
		PullRequestName: prName,
		AuthorID:        authorID,
		TeamName:        author.TeamName,
		Status:          domain.StatusOpen,
	}

	if err := pr.Create(tx, newPR); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrPRExists
		}
		// The author was deleted between the Get above and the insert.
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrPRAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	for _, reviewerID := range reviewers {
		if err := pr.InsertReviewer(tx, prID, reviewerID); err != nil {
			return nil, err
		}
	}

	created, err := pr.Get(tx, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created pull request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrPRExists
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// MergePR merges a pull request.
// Idempotent: merging an already merged PR returns its current state.
func (s *PRService) MergePR(prID string) (*domain.PullRequest, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := pr.Get(tx, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	if p.Status == domain.StatusMerged {
		return p, nil
	}

	if err := pr.Merge(tx, prID); err != nil {
		return nil, err
	}

	merged, err := pr.Get(tx, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merged pull request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return merged, nil
}

// ReassignPR replaces one assigned reviewer with a random active teammate of
// the author who is not already involved with the pull request.
// Returns the updated pull request and the ID of the new reviewer.
func (s *PRService) ReassignPR(prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := pr.Get(tx, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrPRNotFound
		}
		return nil, "", fmt.Errorf("failed to get pull request: %w", err)
	}

	if p.Status == domain.StatusMerged {
		return nil, "", ErrPRMerged
	}

	exists, err := user.Exists(tx, oldReviewerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, "", ErrUserNotFound
	}

	assigned, err := pr.IsReviewerAssigned(tx, prID, oldReviewerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check reviewer assignment: %w", err)
	}
	if !assigned {
		return nil, "", ErrReviewerNotAssigned
	}

	teammates, err := user.GetActiveTeammates(tx, p.AuthorID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get teammates: %w", err)
	}

	newReviewerID, err := s.assigner.SelectReplacement(teammates, p.AssignedReviewers)
	if err != nil {
		return nil, "", err
	}

	if err := pr.RemoveReviewer(tx, prID, oldReviewerID); err != nil {
		return nil, "", err
	}
	if err := pr.InsertReviewer(tx, prID, newReviewerID); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	updated, err := pr.Get(tx, prID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get updated pull request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, newReviewerID, nil
}
