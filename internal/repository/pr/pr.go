// Package pr provides database operations for pull requests and their
// reviewer assignments.
package pr

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository"
)

// Create inserts a new pull request.
func Create(exec repository.DBTX, pr *domain.PullRequest) error {
	query := `
		INSERT INTO pull_requests (pull_request_id, pull_request_name, author_id, team_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	now := time.Now()
	_, err := exec.Exec(query, pr.PullRequestID, pr.PullRequestName, pr.AuthorID, pr.TeamName, pr.Status, now)
	if err != nil {
		return fmt.Errorf("failed to create pull request: %w", err)
	}
	return nil
}

// InsertReviewer assigns a reviewer to a pull request.
func InsertReviewer(exec repository.DBTX, prID, userID string) error {
	query := `INSERT INTO pr_reviewers (pull_request_id, user_id) VALUES ($1, $2)`
	_, err := exec.Exec(query, prID, userID)
	if err != nil {
		return fmt.Errorf("failed to insert reviewer: %w", err)
	}
	return nil
}

// RemoveReviewer unassigns a reviewer from a pull request.
func RemoveReviewer(exec repository.DBTX, prID, userID string) error {
	query := `DELETE FROM pr_reviewers WHERE pull_request_id = $1 AND user_id = $2`
	_, err := exec.Exec(query, prID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove reviewer: %w", err)
	}
	return nil
}

// RemoveReviewersByTeam unassigns every reviewer of a pull request that
// belongs to the given team. Returns the number of reviewers removed.
func RemoveReviewersByTeam(exec repository.DBTX, prID, teamName string) (int, error) {
	query := `
		DELETE FROM pr_reviewers
		WHERE pull_request_id = $1
		  AND user_id IN (SELECT user_id FROM users WHERE team_name = $2)
	`
	result, err := exec.Exec(query, prID, teamName)
	if err != nil {
		return 0, fmt.Errorf("failed to remove reviewers by team: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(removed), nil
}

// Get retrieves a pull request by ID with all assigned reviewers.
func Get(exec repository.DBTX, prID string) (*domain.PullRequest, error) {
	query := `
		SELECT pull_request_id, pull_request_name, author_id, team_name, status, created_at, merged_at
		FROM pull_requests
		WHERE pull_request_id = $1
	`
	var p domain.PullRequest
	err := exec.QueryRow(query, prID).Scan(
		&p.PullRequestID,
		&p.PullRequestName,
		&p.AuthorID,
		&p.TeamName,
		&p.Status,
		&p.CreatedAt,
		&p.MergedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	reviewersQuery := `
		SELECT user_id
		FROM pr_reviewers
		WHERE pull_request_id = $1
		ORDER BY user_id
	`
	rows, err := exec.Query(reviewersQuery, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reviewers []string
	for rows.Next() {
		var reviewerID string
		if err := rows.Scan(&reviewerID); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer: %w", err)
		}
		reviewers = append(reviewers, reviewerID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	p.AssignedReviewers = reviewers
	return &p, nil
}

// GetByReviewer retrieves all pull requests assigned to a user for review.
func GetByReviewer(exec repository.DBTX, userID string) ([]domain.PullRequestShort, error) {
	query := `
		SELECT pr.pull_request_id, pr.pull_request_name, pr.author_id, pr.status
		FROM pull_requests pr
		JOIN pr_reviewers rev ON pr.pull_request_id = rev.pull_request_id
		WHERE rev.user_id = $1
		ORDER BY pr.created_at DESC
	`
	rows, err := exec.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user pull requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var prs []domain.PullRequestShort
	for rows.Next() {
		var p domain.PullRequestShort
		if err := rows.Scan(&p.PullRequestID, &p.PullRequestName, &p.AuthorID, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan pull request: %w", err)
		}
		prs = append(prs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return prs, nil
}

// GetOpenByReviewerTeam retrieves all OPEN pull requests that have at least
// one assigned reviewer from the given team.
func GetOpenByReviewerTeam(exec repository.DBTX, teamName string) ([]domain.PullRequest, error) {
	query := `
		SELECT DISTINCT pr.pull_request_id
		FROM pull_requests pr
		JOIN pr_reviewers rev ON pr.pull_request_id = rev.pull_request_id
		JOIN users u ON rev.user_id = u.user_id
		WHERE u.team_name = $1 AND pr.status = 'OPEN'
		ORDER BY pr.pull_request_id
	`
	rows, err := exec.Query(query, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get open pull requests by reviewer team: %w", err)
	}

	var prIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan pull request id: %w", err)
		}
		prIDs = append(prIDs, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	_ = rows.Close()

	prs := make([]domain.PullRequest, 0, len(prIDs))
	for _, id := range prIDs {
		p, err := Get(exec, id)
		if err != nil {
			return nil, err
		}
		prs = append(prs, *p)
	}

	return prs, nil
}

// Merge marks a pull request as merged and records the merge time.
func Merge(exec repository.DBTX, prID string) error {
	query := `
		UPDATE pull_requests
		SET status = $1, merged_at = $2
		WHERE pull_request_id = $3
	`
	_, err := exec.Exec(query, domain.StatusMerged, time.Now(), prID)
	if err != nil {
		return fmt.Errorf("failed to merge pull request: %w", err)
	}
	return nil
}

// Exists checks if a pull request exists.
func Exists(exec repository.DBTX, prID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pull_requests WHERE pull_request_id = $1)`
	err := exec.QueryRow(query, prID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pull request existence: %w", err)
	}
	return exists, nil
}

// IsReviewerAssigned checks if a user is assigned as a reviewer for a PR.
func IsReviewerAssigned(exec repository.DBTX, prID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pr_reviewers WHERE pull_request_id = $1 AND user_id = $2)`
	err := exec.QueryRow(query, prID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reviewer assignment: %w", err)
	}
	return exists, nil
}
