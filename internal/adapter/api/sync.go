package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"

	"healthtrack/internal/app/syncapp"
	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
)

func (s *Server) MountSync() {
	s.handler.POST("/sync/:user_id/push", s.SyncPush)
	s.handler.GET("/sync/:user_id/pull", s.SyncPull)
}

func (s *Server) getSyncUoW() *unitofwork.UnitOfWork[*syncapp.AtomicContext] {
	return unitofwork.New[*syncapp.AtomicContext](
		s.db,
		syncapp.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type SyncPushRequest struct {
	UserID  string                 `param:"user_id" validate:"required"`
	Bmi     []syncapp.PushedBmi    `json:"bmi"`
	Samples []syncapp.PushedSample `json:"samples"`
}

func (s *Server) SyncPush(c echo.Context) error {
	var req SyncPushRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getSyncUoW()

	result, err := s.syncService.Push(c.Request().Context(), uow, req.UserID, deviceLabel(c), req.Bmi, req.Samples)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

type SyncPullRequest struct {
	UserID string `param:"user_id" validate:"required"`
	Since  string `query:"since"`
}

func (s *Server) SyncPull(c echo.Context) error {
	var req SyncPullRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	since := req.Since
	if since == "" && s.pullWindowDays > 0 {
		since = time.Now().UTC().AddDate(0, 0, -s.pullWindowDays).Format(health.DateLayout)
	}

	uow := s.getSyncUoW()

	snapshot, err := s.syncService.Pull(c.Request().Context(), uow, req.UserID, since)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// deviceLabel condenses the User-Agent header into a short label for sync
// logs, so pushes from different clients can be told apart.
func deviceLabel(c echo.Context) string {
	ua := useragent.Parse(c.Request().UserAgent())
	if ua.Name == "" {
		return "unknown"
	}

	label := ua.Name
	if ua.OS != "" {
		label += " (" + ua.OS + ")"
	}
	return label
}
