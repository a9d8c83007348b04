package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthtrack/internal/app/insightsapp"
	"healthtrack/internal/app/unitofwork"
)

func (s *Server) MountInsights() {
	s.handler.GET("/insights/:user_id/dashboard", s.GetDashboard)
	s.handler.GET("/insights/:user_id/plan", s.GetPlan)
}

func (s *Server) getInsightsUoW() *unitofwork.UnitOfWork[*insightsapp.AtomicContext] {
	return unitofwork.New[*insightsapp.AtomicContext](
		s.db,
		insightsapp.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type GetDashboardRequest struct {
	UserID string `param:"user_id" validate:"required"`
	Since  string `query:"since"`
}

func (s *Server) GetDashboard(c echo.Context) error {
	var req GetDashboardRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getInsightsUoW()

	dashboard, err := s.insightsService.Dashboard(c.Request().Context(), uow, req.UserID, req.Since)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

type GetPlanRequest struct {
	UserID    string  `param:"user_id" validate:"required"`
	TargetBMI float64 `query:"target_bmi"`
}

func (s *Server) GetPlan(c echo.Context) error {
	var req GetPlanRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getInsightsUoW()

	plan, err := s.insightsService.Plan(c.Request().Context(), uow, req.UserID, req.TargetBMI)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}
