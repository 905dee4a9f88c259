package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/pr"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/stats"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/team"
	"github.com/ekazakov/pr-reviewer-service/internal/repository/user"
	"github.com/ekazakov/pr-reviewer-service/internal/service"
	"github.com/ekazakov/pr-reviewer-service/tests"
)

func TestStatsService_GetStatistics(t *testing.T) {
	db := tests.SetupTestDB(t)

	statsService := service.NewStatsService(db)

	t.Run("success - empty statistics", func(t *testing.T) {
		st, err := statsService.GetStatistics()
		require.NoError(t, err)
		require.NotNil(t, st)
		require.NotNil(t, st.Overall)

		assert.Equal(t, int64(0), st.Overall.TotalPRs)
		assert.Equal(t, int64(0), st.Overall.TotalAssignments)
		assert.Equal(t, int64(0), st.Overall.TotalUsers)
		assert.Equal(t, int64(0), st.Overall.TotalTeams)
		assert.Empty(t, st.ReviewerStats)
		assert.Empty(t, st.AuthorStats)
	})

	t.Run("success - statistics with data", func(t *testing.T) {
		teamName1 := "team1"
		teamName2 := "team2"
		authorID := "author1"
		reviewerID1 := "reviewer1"
		reviewerID2 := "reviewer2"

		require.NoError(t, team.Create(db, teamName1))
		require.NoError(t, team.Create(db, teamName2))

		require.NoError(t, user.Create(db, &domain.User{
			UserID:   authorID,
			Username: "author",
			TeamName: teamName1,
			IsActive: true,
		}))
		require.NoError(t, user.Create(db, &domain.User{
			UserID:   reviewerID1,
			Username: "reviewer1",
			TeamName: teamName1,
			IsActive: true,
		}))
		require.NoError(t, user.Create(db, &domain.User{
			UserID:   reviewerID2,
			Username: "reviewer2",
			TeamName: teamName2,
			IsActive: true,
		}))

		require.NoError(t, pr.Create(db, &domain.PullRequest{
			PullRequestID:   "pr1",
			PullRequestName: "PR 1",
			AuthorID:        authorID,
			TeamName:        teamName1,
			Status:          domain.StatusOpen,
		}))
		require.NoError(t, pr.Create(db, &domain.PullRequest{
			PullRequestID:   "pr2",
			PullRequestName: "PR 2",
			AuthorID:        authorID,
			TeamName:        teamName1,
			Status:          domain.StatusOpen,
		}))
		require.NoError(t, pr.Create(db, &domain.PullRequest{
			PullRequestID:   "pr3",
			PullRequestName: "PR 3",
			AuthorID:        reviewerID1,
			TeamName:        teamName1,
			Status:          domain.StatusMerged,
		}))

		require.NoError(t, pr.InsertReviewer(db, "pr1", reviewerID1))
		require.NoError(t, pr.InsertReviewer(db, "pr1", reviewerID2))
		require.NoError(t, pr.InsertReviewer(db, "pr2", reviewerID1))
		require.NoError(t, pr.InsertReviewer(db, "pr3", reviewerID2))

		st, err := statsService.GetStatistics()
		require.NoError(t, err)
		require.NotNil(t, st)
		require.NotNil(t, st.Overall)

		assert.Equal(t, int64(3), st.Overall.TotalPRs)
		assert.Equal(t, int64(4), st.Overall.TotalAssignments)
		assert.Equal(t, int64(3), st.Overall.TotalUsers)
		assert.Equal(t, int64(2), st.Overall.TotalTeams)

		// Both reviewers have 2 assignments each. The author never reviewed,
		// so they do not appear in reviewer stats at all.
		require.Len(t, st.ReviewerStats, 2)
		byReviewer := make(map[string]stats.ReviewerStat)
		for _, s := range st.ReviewerStats {
			byReviewer[s.UserID] = s
		}
		require.Contains(t, byReviewer, reviewerID1)
		assert.Equal(t, "reviewer1", byReviewer[reviewerID1].Username)
		assert.Equal(t, int64(2), byReviewer[reviewerID1].Count)
		require.Contains(t, byReviewer, reviewerID2)
		assert.Equal(t, int64(2), byReviewer[reviewerID2].Count)
		assert.NotContains(t, byReviewer, authorID)

		// author1 authored 2 PRs, reviewer1 authored 1, reviewer2 none.
		require.Len(t, st.AuthorStats, 2)
		byAuthor := make(map[string]stats.AuthorStat)
		for _, s := range st.AuthorStats {
			byAuthor[s.UserID] = s
		}
		require.Contains(t, byAuthor, authorID)
		assert.Equal(t, "author", byAuthor[authorID].Username)
		assert.Equal(t, int64(2), byAuthor[authorID].Count)
		require.Contains(t, byAuthor, reviewerID1)
		assert.Equal(t, int64(1), byAuthor[reviewerID1].Count)
		assert.NotContains(t, byAuthor, reviewerID2)

		// Most loaded first.
		assert.GreaterOrEqual(t, st.ReviewerStats[0].Count, st.ReviewerStats[1].Count)
		assert.GreaterOrEqual(t, st.AuthorStats[0].Count, st.AuthorStats[1].Count)
	})

	t.Run("success - user with no activity stays out of per-user stats", func(t *testing.T) {
		require.NoError(t, team.Create(db, "team3"))
		require.NoError(t, user.Create(db, &domain.User{
			UserID:   "user_no_activity",
			Username: "no_activity",
			TeamName: "team3",
			IsActive: true,
		}))

		st, err := statsService.GetStatistics()
		require.NoError(t, err)

		for _, s := range st.ReviewerStats {
			assert.NotEqual(t, "user_no_activity", s.UserID)
		}
		for _, s := range st.AuthorStats {
			assert.NotEqual(t, "user_no_activity", s.UserID)
		}
		// It still counts toward the overall user total.
		assert.Equal(t, int64(4), st.Overall.TotalUsers)
	})
}
