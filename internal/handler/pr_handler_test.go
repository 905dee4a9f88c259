package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ekazakov/pr-reviewer-service/internal/domain"
	"github.com/ekazakov/pr-reviewer-service/internal/handler"
	"github.com/ekazakov/pr-reviewer-service/internal/handler/mocks"
	"github.com/ekazakov/pr-reviewer-service/internal/service"
)

func TestPRHandler_CreatePR(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now()

	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockPRServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - creates PR with reviewers",
			requestBody: map[string]any{
				"pull_request_id":   "pr-1",
				"pull_request_name": "Add search",
				"author_id":         "u1",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().CreatePR("pr-1", "Add search", "u1").Return(&domain.PullRequest{
					PullRequestID:     "pr-1",
					PullRequestName:   "Add search",
					AuthorID:          "u1",
					TeamName:          "team1",
					Status:            domain.StatusOpen,
					AssignedReviewers: []string{"u2", "u3"},
					CreatedAt:         &now,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.NotNil(t, response.PR)
				assert.Equal(t, "pr-1", response.PR.PullRequestID)
				assert.Equal(t, "OPEN", response.PR.Status)
				assert.ElementsMatch(t, []string{"u2", "u3"}, response.PR.AssignedReviewers)
				assert.NotEmpty(t, response.PR.CreatedAt)
			},
		},
		{
			name: "error - PR already exists",
			requestBody: map[string]any{
				"pull_request_id":   "pr-1",
				"pull_request_name": "Add search",
				"author_id":         "u1",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().CreatePR("pr-1", "Add search", "u1").Return(nil, service.ErrPRExists)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorPRExists, response.Error.Code)
			},
		},
		{
			name: "error - author not found",
			requestBody: map[string]any{
				"pull_request_id":   "pr-2",
				"pull_request_name": "Add search",
				"author_id":         "ghost",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().CreatePR("pr-2", "Add search", "ghost").Return(nil, service.ErrPRAuthorNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorNotFound, response.Error.Code)
			},
		},
		{
			name:           "error - missing fields",
			requestBody:    map[string]any{"pull_request_id": "pr-3"},
			mockSetup:      func(m *mocks.MockPRServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "invalid request body", response.Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(mockService)

			r := gin.New()
			h := handler.NewPRHandler(mockService)
			r.POST("/pullRequest/create", h.CreatePR)

			w := performRequest(r, http.MethodPost, "/pullRequest/create", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestPRHandler_MergePR(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now()

	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockPRServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - merges PR",
			requestBody: map[string]any{"pull_request_id": "pr-1"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().MergePR("pr-1").Return(&domain.PullRequest{
					PullRequestID:     "pr-1",
					PullRequestName:   "Add search",
					AuthorID:          "u1",
					TeamName:          "team1",
					Status:            domain.StatusMerged,
					AssignedReviewers: []string{"u2"},
					MergedAt:          &now,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.NotNil(t, response.PR)
				assert.Equal(t, "MERGED", response.PR.Status)
				assert.NotEmpty(t, response.PR.MergedAt)
			},
		},
		{
			name:        "error - PR not found",
			requestBody: map[string]any{"pull_request_id": "ghost"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().MergePR("ghost").Return(nil, service.ErrPRNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorNotFound, response.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(mockService)

			r := gin.New()
			h := handler.NewPRHandler(mockService)
			r.POST("/pullRequest/merge", h.MergePR)

			w := performRequest(r, http.MethodPost, "/pullRequest/merge", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestPRHandler_ReassignPR(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockPRServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - replaces reviewer",
			requestBody: map[string]any{"pull_request_id": "pr-1", "old_user_id": "u2"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().ReassignPR("pr-1", "u2").Return(&domain.PullRequest{
					PullRequestID:     "pr-1",
					PullRequestName:   "Add search",
					AuthorID:          "u1",
					TeamName:          "team1",
					Status:            domain.StatusOpen,
					AssignedReviewers: []string{"u3"},
				}, "u3", nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ReassignResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.NotNil(t, response.PR)
				assert.Equal(t, "u3", response.ReplacedBy)
				assert.Contains(t, response.PR.AssignedReviewers, "u3")
			},
		},
		{
			name:        "error - PR merged",
			requestBody: map[string]any{"pull_request_id": "pr-1", "old_user_id": "u2"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().ReassignPR("pr-1", "u2").Return(nil, "", service.ErrPRMerged)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorPRMerged, response.Error.Code)
			},
		},
		{
			name:        "error - reviewer not assigned",
			requestBody: map[string]any{"pull_request_id": "pr-1", "old_user_id": "u9"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().ReassignPR("pr-1", "u9").Return(nil, "", service.ErrReviewerNotAssigned)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorNotAssigned, response.Error.Code)
			},
		},
		{
			name:        "error - no candidate",
			requestBody: map[string]any{"pull_request_id": "pr-1", "old_user_id": "u2"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().ReassignPR("pr-1", "u2").Return(nil, "", service.ErrNoCandidate)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorNoCandidate, response.Error.Code)
			},
		},
		{
			name:        "error - PR not found",
			requestBody: map[string]any{"pull_request_id": "ghost", "old_user_id": "u2"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().ReassignPR("ghost", "u2").Return(nil, "", service.ErrPRNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, handler.ErrorNotFound, response.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(mockService)

			r := gin.New()
			h := handler.NewPRHandler(mockService)
			r.POST("/pullRequest/reassign", h.ReassignPR)

			w := performRequest(r, http.MethodPost, "/pullRequest/reassign", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}
