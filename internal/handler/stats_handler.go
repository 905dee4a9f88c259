package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekazakov/pr-reviewer-service/internal/service"
)

// StatsHandler handles statistics HTTP requests.
type StatsHandler struct {
	statsService StatsServiceInterface
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(statsService StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStatistics handles GET /stats.
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetStatistics()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, statisticsToResponse(stats))
}

// statisticsToResponse converts service.Statistics to StatisticsResponse.
func statisticsToResponse(s *service.Statistics) StatisticsResponse {
	resp := StatisticsResponse{
		ReviewerStats: make([]UserStatResponse, len(s.ReviewerStats)),
		AuthorStats:   make([]UserStatResponse, len(s.AuthorStats)),
	}

	if s.Overall != nil {
		resp.Overall = OverallStatsResponse{
			TotalPRs:         s.Overall.TotalPRs,
			TotalAssignments: s.Overall.TotalAssignments,
			TotalUsers:       s.Overall.TotalUsers,
			TotalTeams:       s.Overall.TotalTeams,
		}
	}

	for i, st := range s.ReviewerStats {
		resp.ReviewerStats[i] = UserStatResponse{UserID: st.UserID, Username: st.Username, Count: st.Count}
	}
	for i, st := range s.AuthorStats {
		resp.AuthorStats[i] = UserStatResponse{UserID: st.UserID, Username: st.Username, Count: st.Count}
	}

	return resp
}
