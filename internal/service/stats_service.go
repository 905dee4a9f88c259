package service

import (
	"database/sql"
	"fmt"

	"github.com/ekazakov/pr-reviewer-service/internal/repository/stats"
)

// Statistics aggregates overall counters with per-user leaderboards.
type Statistics struct {
	Overall       *stats.OverallStats
	ReviewerStats []stats.ReviewerStat
	AuthorStats   []stats.AuthorStat
}

// StatsService handles statistics queries.
type StatsService struct {
	db *sql.DB
}

// NewStatsService creates a new statistics service.
func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStatistics returns overall, reviewer, and author statistics.
func (s *StatsService) GetStatistics() (*Statistics, error) {
	overall, err := stats.GetOverallStats(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}

	reviewerStats, err := stats.GetReviewerStats(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewer stats: %w", err)
	}

	authorStats, err := stats.GetAuthorStats(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get author stats: %w", err)
	}

	return &Statistics{
		Overall:       overall,
		ReviewerStats: reviewerStats,
		AuthorStats:   authorStats,
	}, nil
}
