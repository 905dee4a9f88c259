// Package stats provides read-only aggregate queries for service statistics.
package stats

import (
	"fmt"

	"github.com/ekazakov/pr-reviewer-service/internal/repository"
)

// ReviewerStat represents assignment statistics for a reviewer.
type ReviewerStat struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

// AuthorStat represents authored-PR statistics for a user.
type AuthorStat struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

// OverallStats represents overall registry counters.
type OverallStats struct {
	TotalPRs         int64 `json:"total_prs"`
	TotalAssignments int64 `json:"total_assignments"`
	TotalUsers       int64 `json:"total_users"`
	TotalTeams       int64 `json:"total_teams"`
}

// GetOverallStats returns overall counters for PRs, assignments, users and teams.
func GetOverallStats(exec repository.DBTX) (*OverallStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM pull_requests),
			(SELECT COUNT(*) FROM pr_reviewers),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM teams)
	`
	var s OverallStats
	err := exec.QueryRow(query).Scan(&s.TotalPRs, &s.TotalAssignments, &s.TotalUsers, &s.TotalTeams)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}
	return &s, nil
}

// GetReviewerStats returns assignment counts per user, most loaded first.
// Users with no assignments are excluded.
func GetReviewerStats(exec repository.DBTX) ([]ReviewerStat, error) {
	query := `
		SELECT u.user_id, u.username, COUNT(rev.user_id) AS assignment_count
		FROM users u
		JOIN pr_reviewers rev ON u.user_id = rev.user_id
		GROUP BY u.user_id, u.username
		ORDER BY assignment_count DESC, u.user_id
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewer stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []ReviewerStat
	for rows.Next() {
		var stat ReviewerStat
		if err := rows.Scan(&stat.UserID, &stat.Username, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}

// GetAuthorStats returns authored-PR counts per user, most prolific first.
// Users with no PRs are excluded.
func GetAuthorStats(exec repository.DBTX) ([]AuthorStat, error) {
	query := `
		SELECT u.user_id, u.username, COUNT(pr.pull_request_id) AS pr_count
		FROM users u
		JOIN pull_requests pr ON u.user_id = pr.author_id
		GROUP BY u.user_id, u.username
		ORDER BY pr_count DESC, u.user_id
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get author stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []AuthorStat
	for rows.Next() {
		var stat AuthorStat
		if err := rows.Scan(&stat.UserID, &stat.Username, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan author stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
