package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/pr"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/team"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/user"
)

// TeamService handles team business logic.
type TeamService struct {
	db       *sql.DB
	assigner *ReviewerAssigner
}

// NewTeamService creates a new team service.
func NewTeamService(db *sql.DB, assigner *ReviewerAssigner) *TeamService {
	return &TeamService{db: db, assigner: assigner}
}

// CreateTeam creates a new team with members in a single transaction.
// Members already known to the registry are moved into the new team and
// their username/is_active overwritten with the submitted values.
func (s *TeamService) CreateTeam(teamName string, members []domain.TeamMember) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := team.Exists(tx, teamName)
	if err != nil {
		return fmt.Errorf("failed to check team existence: %w", err)
	}
	if exists {
		return ErrTeamExists
	}

	if err := team.Create(tx, teamName); err != nil {
		// Concurrent creation of the same team loses on the primary key.
		if repository.IsUniqueViolation(err) {
			return ErrTeamExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	for _, member := range members {
		u := domain.User{
			UserID:   member.UserID,
			Username: member.Username,
			TeamName: teamName,
			IsActive: member.IsActive,
		}

		existing, err := user.Get(tx, member.UserID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check user existence: %w", err)
		}

		if existing == nil {
			if err := user.Create(tx, &u); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		} else {
			if err := user.Update(tx, &u); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrTeamExists
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTeam retrieves a team with all its members.
func (s *TeamService) GetTeam(teamName string) (*domain.Team, error) {
	t, err := team.Get(s.db, teamName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

// DeactivateTeam marks every member of the team inactive and removes them
// from open review assignments. Pull requests authored in other teams are
// replenished with active teammates of their author; pull requests of the
// deactivated team itself are left without the removed reviewers.
func (s *TeamService) DeactivateTeam(teamName string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := team.Exists(tx, teamName)
	if err != nil {
		return fmt.Errorf("failed to check team existence: %w", err)
	}
	if !exists {
		return ErrTeamNotFound
	}

	affected, err := pr.GetOpenByReviewerTeam(tx, teamName)
	if err != nil {
		return fmt.Errorf("failed to get affected pull requests: %w", err)
	}

	if err := user.DeactivateByTeam(tx, teamName); err != nil {
		return err
	}

	for _, p := range affected {
		removed, err := pr.RemoveReviewersByTeam(tx, p.PullRequestID, teamName)
		if err != nil {
			return err
		}
		if removed == 0 || p.TeamName == teamName {
			continue
		}

		if err := s.replenishReviewers(tx, p.PullRequestID, removed); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// replenishReviewers assigns up to n additional reviewers to the pull
// request from the author's active teammates.
func (s *TeamService) replenishReviewers(tx repository.DBTX, prID string, n int) error {
	p, err := pr.Get(tx, prID)
	if err != nil {
		return fmt.Errorf("failed to get pull request: %w", err)
	}

	teammates, err := user.GetActiveTeammates(tx, p.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to get teammates: %w", err)
	}

	assigned := make(map[string]struct{}, len(p.AssignedReviewers))
	for _, id := range p.AssignedReviewers {
		assigned[id] = struct{}{}
	}

	candidates := make([]domain.User, 0, len(teammates))
	for _, u := range teammates {
		if _, ok := assigned[u.UserID]; !ok {
			candidates = append(candidates, u)
		}
	}

	newReviewers, err := s.assigner.SelectN(candidates, n)
	if err != nil {
		return fmt.Errorf("failed to select reviewers: %w", err)
	}

	for _, reviewerID := range newReviewers {
		if err := pr.InsertReviewer(tx, prID, reviewerID); err != nil {
			return err
		}
	}

	return nil
}
