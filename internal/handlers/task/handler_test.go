package task_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tasker/config"
	"tasker/infras/jwt"
	"tasker/infras/otel/mocks"
	taskMocks "tasker/internal/domains/task/mocks"
	"tasker/internal/domains/task/model/dto"
	"tasker/internal/handlers/task"
	"tasker/shared/failure"
	"tasker/transport/http/middleware"
)

func setupRouter(t *testing.T) (*chi.Mux, *taskMocks.MockTaskService, jwt.JWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 60

	mockOtel := mocks.NewOtel()
	mockService := taskMocks.NewMockTaskService(ctrl)

	jwtService := jwt.New(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, mockOtel, cfg)

	handler := task.New(mockService, authMiddleware, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService, jwtService
}

func bearerToken(t *testing.T, jwtService jwt.JWT, username string) string {
	t.Helper()

	token, err := jwtService.GenerateToken(username)
	require.NoError(t, err)

	return "Bearer " + token
}

func decodeDetail(t *testing.T, body string) string {
	t.Helper()

	var payload struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	return payload.Detail
}

func TestTaskHandler_CreateTask(t *testing.T) {
	router, mockService, jwtService := setupRouter(t)

	tests := []struct {
		name       string
		body       string
		setupMock  func()
		wantStatus int
	}{
		{
			name: "successful creation",
			body: `{"title":"Buy milk"}`,
			setupMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), dto.CreateTaskRequest{Title: strPtr("Buy milk")}).
					Return(dto.TaskResponse{ID: 1, Title: "Buy milk", Completed: false, Owner: "alice"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty title is accepted",
			body: `{"title":""}`,
			setupMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), dto.CreateTaskRequest{Title: strPtr("")}).
					Return(dto.TaskResponse{ID: 2, Title: "", Completed: false, Owner: "alice"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"title":`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(tt.body))
			req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp dto.TaskResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, "alice", resp.Owner)
				assert.False(t, resp.Completed)
			}
		})
	}
}

func TestTaskHandler_GetTasks(t *testing.T) {
	router, mockService, jwtService := setupRouter(t)

	t.Run("returns the caller's tasks", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return([]dto.TaskResponse{
				{ID: 1, Title: "First", Completed: false, Owner: "alice"},
				{ID: 2, Title: "Second", Completed: true, Owner: "alice"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp []dto.TaskResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return([]dto.TaskResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "[]", recorder.Body.String())
	})
}

func TestTaskHandler_GetTaskByID(t *testing.T) {
	router, mockService, jwtService := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		setupMock  func()
		wantStatus int
		wantDetail string
	}{
		{
			name: "successful get",
			path: "/tasks/1",
			setupMock: func() {
				mockService.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(dto.TaskResponse{ID: 1, Title: "Mine", Owner: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "task not found",
			path: "/tasks/999",
			setupMock: func() {
				mockService.EXPECT().
					Get(gomock.Any(), int64(999)).
					Return(dto.TaskResponse{}, failure.TaskNotFoundError)
			},
			wantStatus: http.StatusNotFound,
			wantDetail: "Task not found",
		},
		{
			name: "task owned by someone else",
			path: "/tasks/1",
			setupMock: func() {
				mockService.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(dto.TaskResponse{}, failure.Forbidden("Not authorized to access this task"))
			},
			wantStatus: http.StatusForbidden,
			wantDetail: "Not authorized to access this task",
		},
		{
			name:       "non-numeric id",
			path:       "/tasks/abc",
			setupMock:  func() {},
			wantStatus: http.StatusNotFound,
			wantDetail: "Task not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, recorder.Body.String()))
			}
		})
	}
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	router, mockService, jwtService := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func()
		wantStatus int
		wantDetail string
	}{
		{
			name: "successful update",
			path: "/tasks/1",
			body: `{"title":"Updated","completed":true}`,
			setupMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), dto.UpdateTaskRequest{Title: strPtr("Updated"), Completed: boolPtr(true)}, int64(1)).
					Return(dto.TaskResponse{ID: 1, Title: "Updated", Completed: true, Owner: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing completed",
			path:       "/tasks/1",
			body:       `{"title":"Updated"}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "task owned by someone else",
			path: "/tasks/1",
			body: `{"title":"Updated","completed":true}`,
			setupMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(1)).
					Return(dto.TaskResponse{}, failure.Forbidden("Not authorized to update this task"))
			},
			wantStatus: http.StatusForbidden,
			wantDetail: "Not authorized to update this task",
		},
		{
			name: "task not found",
			path: "/tasks/999",
			body: `{"title":"Updated","completed":true}`,
			setupMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(999)).
					Return(dto.TaskResponse{}, failure.TaskNotFoundError)
			},
			wantStatus: http.StatusNotFound,
			wantDetail: "Task not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, recorder.Body.String()))
			}
		})
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	router, mockService, jwtService := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		setupMock  func()
		wantStatus int
		wantDetail string
	}{
		{
			name: "successful delete",
			path: "/tasks/1",
			setupMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), int64(1)).
					Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "task not found",
			path: "/tasks/999",
			setupMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), int64(999)).
					Return(failure.TaskNotFoundError)
			},
			wantStatus: http.StatusNotFound,
			wantDetail: "Task not found",
		},
		{
			name: "task owned by someone else",
			path: "/tasks/1",
			setupMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), int64(1)).
					Return(failure.Forbidden("Not authorized to delete this task"))
			},
			wantStatus: http.StatusForbidden,
			wantDetail: "Not authorized to delete this task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req.Header.Set("Authorization", bearerToken(t, jwtService, "alice"))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, recorder.Body.String())
			}

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, recorder.Body.String()))
			}
		})
	}
}

func TestTaskHandler_RequiresAuthentication(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"))
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
