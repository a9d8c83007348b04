package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"healthtrack/internal/app/profileapp"
	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
)

func (s *Server) MountProfile() {
	s.handler.PUT("/profiles/:user_id/measurement", s.SaveMeasurement)
	s.handler.GET("/profiles/:user_id", s.GetProfile)
}

func (s *Server) getProfileUoW() *unitofwork.UnitOfWork[*profileapp.AtomicContext] {
	return unitofwork.New[*profileapp.AtomicContext](
		s.db,
		profileapp.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type SaveMeasurementRequest struct {
	UserID        string  `param:"user_id" validate:"required"`
	Height        float64 `json:"height" validate:"required,gt=0"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	Age           int     `json:"age" validate:"required,gt=0"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very-active"`
	Unit          string  `json:"unit" validate:"required,oneof=metric imperial"`
	Goal          string  `json:"goal" validate:"required,oneof=ideal bulking"`
}

type SummaryModel struct {
	BMI                float64 `json:"bmi"`
	Category           string  `json:"category"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	WaterTargetML      int     `json:"water_target_ml"`
}

func (s *Server) SaveMeasurement(c echo.Context) error {
	var req SaveMeasurementRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	m := health.Measurement{
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        health.Gender(req.Gender),
		ActivityLevel: health.ActivityLevel(req.ActivityLevel),
		Unit:          health.Unit(req.Unit),
	}

	uow := s.getProfileUoW()
	ctx := c.Request().Context()

	summary, err := s.profileService.SaveMeasurement(ctx, uow, req.UserID, m, health.Goal(req.Goal), time.Now().UTC())
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, summaryModel(summary))
}

type GetProfileRequest struct {
	UserID string `param:"user_id" validate:"required"`
}

type GetProfileResponse struct {
	UserID        string       `json:"user_id"`
	Height        float64      `json:"height"`
	Weight        float64      `json:"weight"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	ActivityLevel string       `json:"activity_level"`
	Unit          string       `json:"unit"`
	Goal          string       `json:"goal"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Summary       SummaryModel `json:"summary"`
}

func (s *Server) GetProfile(c echo.Context) error {
	var req GetProfileRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getProfileUoW()

	p, summary, err := s.profileService.GetProfile(c.Request().Context(), uow, req.UserID)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, GetProfileResponse{
		UserID:        p.UserID,
		Height:        p.Height,
		Weight:        p.Weight,
		Age:           p.Age,
		Gender:        string(p.Gender),
		ActivityLevel: string(p.ActivityLevel),
		Unit:          string(p.Unit),
		Goal:          string(p.Goal),
		UpdatedAt:     p.UpdatedAt,
		Summary:       summaryModel(summary),
	})
}

func summaryModel(summary *profileapp.Summary) SummaryModel {
	return SummaryModel{
		BMI:                summary.BMI,
		Category:           string(summary.Category),
		DailyCalorieTarget: summary.DailyCalorieTarget,
		WaterTargetML:      summary.WaterTargetML,
	}
}
