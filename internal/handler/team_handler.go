package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/service"
)

// TeamHandler handles team-related HTTP requests.
type TeamHandler struct {
	teamService TeamServiceInterface
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// AddTeam handles POST /team/add (and its /team/create alias).
func (h *TeamHandler) AddTeam(c *gin.Context) {
	var req AddTeamRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	err := h.teamService.CreateTeam(req.TeamName, req.Members)
	if err != nil {
		if errors.Is(err, service.ErrTeamExists) {
			// 400 rather than 409 is the published contract for this code.
			Error(c, ErrorTeamExists, "team_name already exists", http.StatusBadRequest)
			return
		}
		InternalError(c, err.Error())
		return
	}

	team, err := h.teamService.GetTeam(req.TeamName)
	if err != nil {
		InternalError(c, "failed to retrieve created team")
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Team: domainToTeamResponse(team),
	})
}

// GetTeam handles GET /team/get.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		BadRequest(c, "team_name parameter is required")
		return
	}

	team, err := h.teamService.GetTeam(teamName)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			NotFound(c, "team not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, domainToTeamResponse(team))
}

// DeactivateTeam handles POST /team/deactivate.
func (h *TeamHandler) DeactivateTeam(c *gin.Context) {
	var req DeactivateTeamRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	if err := h.teamService.DeactivateTeam(req.TeamName); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			NotFound(c, "team not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deactivated successfully"})
}

// domainToTeamResponse converts domain.Team to TeamResponse.
func domainToTeamResponse(team *domain.Team) *TeamResponse {
	members := make([]TeamMember, len(team.Members))
	for i, m := range team.Members {
		members[i] = TeamMember{
			UserID:   m.UserID,
			Username: m.Username,
			IsActive: m.IsActive,
		}
	}

	return &TeamResponse{
		TeamName: team.TeamName,
		Members:  members,
	}
}
