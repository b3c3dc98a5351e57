package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks DirectoryAdmin

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"roster/internal/admin/handler/mocks"
	"roster/internal/directory"
	"roster/internal/directory/snapshot"
	dErrors "roster/pkg/domain-errors"
)

type AdminSuite struct {
	suite.Suite
	router        http.Handler
	ctrl          *gomock.Controller
	mockDirectory *mocks.MockDirectoryAdmin
}

func (s *AdminSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDirectory = mocks.NewMockDirectoryAdmin(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.mockDirectory, logger)

	r := chi.NewRouter()
	h.RegisterAdmin(r)
	s.router = r
}

func (s *AdminSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdminSuite) TestReload() {
	loadedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s.mockDirectory.EXPECT().Reload(gomock.Any()).Return(nil)
	s.mockDirectory.EXPECT().Stats().Return(directory.Stats{
		Loaded:   true,
		Records:  3,
		Version:  snapshot.Version{ModTime: loadedAt},
		LoadedAt: loadedAt,
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/directory/reload", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var resp reloadResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("reloaded", resp.Status)
	s.Equal(3, resp.Records)
}

func (s *AdminSuite) TestReloadFailure() {
	s.mockDirectory.EXPECT().Reload(gomock.Any()).
		Return(dErrors.Wrap(errors.New("parse error"), dErrors.CodeUnavailable, "snapshot reload failed"))

	req := httptest.NewRequest(http.MethodPost, "/admin/directory/reload", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *AdminSuite) TestStats() {
	loadedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s.mockDirectory.EXPECT().Stats().Return(directory.Stats{
		Loaded:   true,
		Records:  42,
		Version:  snapshot.Version{ModTime: loadedAt},
		LoadedAt: loadedAt,
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/directory/stats", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var resp statsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Loaded)
	s.Equal(42, resp.Records)
	s.Equal("2026-03-14T09:26:53Z", resp.LoadedAt)
}

func (s *AdminSuite) TestStatsBeforeFirstLoad() {
	s.mockDirectory.EXPECT().Stats().Return(directory.Stats{})

	req := httptest.NewRequest(http.MethodGet, "/admin/directory/stats", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var resp statsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Loaded)
	s.Zero(resp.Records)
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminSuite))
}
