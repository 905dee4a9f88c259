package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
)

// MaxReviewers is the number of reviewers assigned to a new pull request.
const MaxReviewers = 2

// ReviewerAssigner handles reviewer selection logic.
type ReviewerAssigner struct{}

// NewReviewerAssigner creates a new reviewer assigner.
func NewReviewerAssigner() *ReviewerAssigner {
	return &ReviewerAssigner{}
}

// SelectReviewers selects up to MaxReviewers reviewers from the candidates.
func (a *ReviewerAssigner) SelectReviewers(candidates []domain.User) ([]string, error) {
	return a.SelectN(candidates, MaxReviewers)
}

// SelectN selects up to n distinct random user IDs from the candidates.
func (a *ReviewerAssigner) SelectN(candidates []domain.User, n int) ([]string, error) {
	if n <= 0 || len(candidates) == 0 {
		return []string{}, nil
	}

	if len(candidates) <= n {
		ids := make([]string, len(candidates))
		for i, u := range candidates {
			ids[i] = u.UserID
		}
		return ids, nil
	}

	selected := make(map[int]bool)
	ids := make([]string, 0, n)

	for len(ids) < n {
		idx, err := secureRandInt(len(candidates))
		if err != nil {
			return nil, fmt.Errorf("failed to generate random index: %w", err)
		}

		if !selected[idx] {
			selected[idx] = true
			ids = append(ids, candidates[idx].UserID)
		}
	}

	return ids, nil
}

// SelectReplacement selects one random candidate not present in the exclude set.
// Returns ErrNoCandidate when every candidate is excluded.
func (a *ReviewerAssigner) SelectReplacement(candidates []domain.User, exclude []string) (string, error) {
	excludeIDs := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excludeIDs[id] = struct{}{}
	}

	eligible := make([]domain.User, 0, len(candidates))
	for _, u := range candidates {
		if _, excluded := excludeIDs[u.UserID]; !excluded {
			eligible = append(eligible, u)
		}
	}

	if len(eligible) == 0 {
		return "", ErrNoCandidate
	}

	ids, err := a.SelectN(eligible, 1)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// secureRandInt returns a cryptographically secure random integer in [0, max).
func secureRandInt(max int) (int, error) {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}
