package integration

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/pr"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/team"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/user"
	"github.com/ekazakov/pr-reviewer-service/internal/service"
	"github.com/ekazakov/pr-reviewer-service/tests"
)

func TestUserService_SetIsActive(t *testing.T) {
	db := tests.SetupTestDB(t)

	teamName := "test_team"
	userID := "user1"

	require.NoError(t, team.Create(db, teamName))
	require.NoError(t, user.Create(db, &domain.User{
		UserID:   userID,
		Username: "test_user",
		TeamName: teamName,
		IsActive: true,
	}))

	userService := service.NewUserService(db)

	cases := []struct {
		name           string
		userID         string
		isActive       bool
		expectedError  error
		expectedActive bool
	}{
		{
			name:           "success - activate user",
			userID:         userID,
			isActive:       true,
			expectedActive: true,
		},
		{
			name:           "success - deactivate user",
			userID:         userID,
			isActive:       false,
			expectedActive: false,
		},
		{
			name:          "error - user not found",
			userID:        "nonexistent",
			isActive:      true,
			expectedError: service.ErrUserNotFound,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			u, err := userService.SetIsActive(tt.userID, tt.isActive)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, tt.userID, u.UserID)
			assert.Equal(t, tt.expectedActive, u.IsActive)
		})
	}
}

func TestUserService_GetUserReviews(t *testing.T) {
	db := tests.SetupTestDB(t)

	teamName := "test_team"
	authorID := "author1"
	reviewerID := "reviewer1"

	require.NoError(t, team.Create(db, teamName))
	require.NoError(t, user.Create(db, &domain.User{
		UserID:   authorID,
		Username: "author",
		TeamName: teamName,
		IsActive: true,
	}))
	require.NoError(t, user.Create(db, &domain.User{
		UserID:   reviewerID,
		Username: "reviewer",
		TeamName: teamName,
		IsActive: true,
	}))

	userService := service.NewUserService(db)

	t.Run("success - returns open reviews", func(t *testing.T) {
		prID := "pr1"
		prName := "Test PR"
		require.NoError(t, createPRWithReviewer(db, prID, prName, authorID, teamName, reviewerID))

		reviews, err := userService.GetUserReviews(reviewerID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, prID, reviews[0].PullRequestID)
		assert.Equal(t, prName, reviews[0].PullRequestName)
		assert.Equal(t, authorID, reviews[0].AuthorID)
		assert.Equal(t, domain.StatusOpen, reviews[0].Status)
	})

	t.Run("success - merged reviews are excluded", func(t *testing.T) {
		prID := "pr_merged"
		require.NoError(t, createPRWithReviewer(db, prID, "Merged PR", authorID, teamName, reviewerID))
		require.NoError(t, pr.Merge(db, prID))

		reviews, err := userService.GetUserReviews(reviewerID)
		require.NoError(t, err)
		for _, r := range reviews {
			assert.NotEqual(t, prID, r.PullRequestID)
		}
	})

	t.Run("success - empty reviews list", func(t *testing.T) {
		require.NoError(t, user.Create(db, &domain.User{
			UserID:   "idle_user",
			Username: "idle",
			TeamName: teamName,
			IsActive: true,
		}))

		reviews, err := userService.GetUserReviews("idle_user")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("error - user not found", func(t *testing.T) {
		_, err := userService.GetUserReviews("nonexistent")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("success - multiple reviews", func(t *testing.T) {
		require.NoError(t, createPRWithReviewer(db, "pr2", "PR 2", authorID, teamName, reviewerID))
		require.NoError(t, createPRWithReviewer(db, "pr3", "PR 3", authorID, teamName, reviewerID))

		reviews, err := userService.GetUserReviews(reviewerID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(reviews), 2)
	})
}

func createPRWithReviewer(db *sql.DB, prID, prName, authorID, teamName, reviewerID string) error {
	pullRequest := &domain.PullRequest{
		PullRequestID:   prID,
		PullRequestName: prName,
		AuthorID:        authorID,
		TeamName:        teamName,
		Status:          domain.StatusOpen,
	}
	if err := pr.Create(db, pullRequest); err != nil {
		return err
	}
	return pr.InsertReviewer(db, prID, reviewerID)
}
