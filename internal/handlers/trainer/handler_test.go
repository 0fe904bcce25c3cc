package trainer_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kidstrainer/infras/database/databasetest"
	"kidstrainer/infras/otel/mocks"
	trainerMocks "kidstrainer/internal/domains/trainer/mocks"
	"kidstrainer/internal/domains/trainer/model"
	"kidstrainer/internal/domains/trainer/service"
	"kidstrainer/internal/handlers/trainer"
	"kidstrainer/shared/cache"
	"kidstrainer/web"
)

func newRouter(t *testing.T, repo *trainerMocks.MockTrainer) chi.Router {
	t.Helper()

	conn, cfg := databasetest.New(t)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	svc := service.New(repo, cfg, cache.NewNoopCache(), mocks.NewOtel())
	handler := trainer.New(svc, conn, renderer, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_ListTrainers(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *trainerMocks.MockTrainer)
		wantCode  int
		wantBody  string
	}{
		{
			name: "renders trainers",
			setupMock: func(m *trainerMocks.MockTrainer) {
				m.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Trainer{{ID: 1, Name: "Jane Doe", Sport: "Tennis", Price: 30}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "Jane Doe",
		},
		{
			name: "storage failure",
			setupMock: func(m *trainerMocks.MockTrainer) {
				m.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("disk I/O error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := trainerMocks.NewMockTrainer(ctrl)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			newRouter(t, repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trainers", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_RegisterTrainer(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *trainerMocks.MockTrainer)
		wantCode  int
	}{
		{
			name: "redirects to the list",
			setupMock: func(m *trainerMocks.MockTrainer) {
				m.EXPECT().Insert(gomock.Any(), gomock.Any(), model.Trainer{Name: "Jane Doe", Sport: "Tennis", Price: 30}).
					Return(int64(1), nil)
			},
			wantCode: http.StatusSeeOther,
		},
		{
			name: "storage failure",
			setupMock: func(m *trainerMocks.MockTrainer) {
				m.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("attempt to write a readonly database"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := trainerMocks.NewMockTrainer(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPost, "/register_trainer", strings.NewReader("name=Jane+Doe&sport=Tennis&price=30"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rec := httptest.NewRecorder()
			newRouter(t, repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
