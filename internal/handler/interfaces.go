package handler

import (
	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// TeamServiceInterface defines the interface for team operations.
type TeamServiceInterface interface {
	CreateTeam(teamName string, members []domain.TeamMember) error
	GetTeam(teamName string) (*domain.Team, error)
	DeactivateTeam(teamName string) error
}

// UserServiceInterface defines the interface for user operations.
type UserServiceInterface interface {
	SetIsActive(userID string, isActive bool) (*domain.User, error)
	GetUserReviews(userID string) ([]domain.PullRequestShort, error)
}

// PRServiceInterface defines the interface for pull request operations.
type PRServiceInterface interface {
	CreatePR(prID, prName, authorID string) (*domain.PullRequest, error)
	MergePR(prID string) (*domain.PullRequest, error)
	ReassignPR(prID, oldReviewerID string) (*domain.PullRequest, string, error)
}

// StatsServiceInterface defines the interface for statistics queries.
type StatsServiceInterface interface {
	GetStatistics() (*service.Statistics, error)
}

// Compile-time checks that the concrete services satisfy the interfaces.
var (
	_ TeamServiceInterface  = (*service.TeamService)(nil)
	_ UserServiceInterface  = (*service.UserService)(nil)
	_ PRServiceInterface    = (*service.PRService)(nil)
	_ StatsServiceInterface = (*service.StatsService)(nil)
)
