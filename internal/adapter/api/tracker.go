package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"healthtrack/internal/app/trackerapp"
	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/record"
)

func (s *Server) MountTracker() {
	s.handler.POST("/trackers/:user_id/water", s.AddWater)
	s.handler.POST("/trackers/:user_id/meals", s.LogMeal)
	s.handler.DELETE("/trackers/:user_id/meals/:meal_id", s.RemoveMeal)
	s.handler.GET("/trackers/:user_id/days/:date", s.GetDay)
}

func (s *Server) getTrackerUoW() *unitofwork.UnitOfWork[*trackerapp.AtomicContext] {
	return unitofwork.New[*trackerapp.AtomicContext](
		s.db,
		trackerapp.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type AddWaterRequest struct {
	UserID   string  `param:"user_id" validate:"required"`
	Date     string  `json:"date,omitempty"`
	AmountML float64 `json:"amount_ml" validate:"required,gt=0"`
}

type AddWaterResponse struct {
	Date    string  `json:"date"`
	WaterML float64 `json:"water_ml"`
}

func (s *Server) AddWater(c echo.Context) error {
	var req AddWaterRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	now := time.Now().UTC()
	date := req.Date
	if date == "" {
		date = now.Format(health.DateLayout)
	}

	uow := s.getTrackerUoW()

	total, err := s.trackerService.AddWater(c.Request().Context(), uow, req.UserID, date, req.AmountML, now)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, AddWaterResponse{Date: date, WaterML: total})
}

type LogMealRequest struct {
	UserID   string  `param:"user_id" validate:"required"`
	Date     string  `json:"date,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Calories float64 `json:"calories" validate:"required,gt=0"`
}

type MealModel struct {
	MealID   string    `json:"meal_id"`
	Date     string    `json:"date"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	LoggedAt time.Time `json:"logged_at"`
}

type LogMealResponse struct {
	Meal     MealModel `json:"meal"`
	Calories float64   `json:"calories"`
}

func (s *Server) LogMeal(c echo.Context) error {
	var req LogMealRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	now := time.Now().UTC()
	date := req.Date
	if date == "" {
		date = now.Format(health.DateLayout)
	}

	uow := s.getTrackerUoW()

	meal, total, err := s.trackerService.LogMeal(c.Request().Context(), uow, req.UserID, date, req.Name, req.Calories, now)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusCreated, LogMealResponse{
		Meal:     mealModel(meal),
		Calories: total,
	})
}

type RemoveMealRequest struct {
	UserID string `param:"user_id" validate:"required"`
	MealID string `param:"meal_id" validate:"required"`
}

type RemoveMealResponse struct {
	Calories float64 `json:"calories"`
}

func (s *Server) RemoveMeal(c echo.Context) error {
	var req RemoveMealRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getTrackerUoW()

	total, err := s.trackerService.RemoveMeal(c.Request().Context(), uow, req.UserID, req.MealID, time.Now().UTC())
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, RemoveMealResponse{Calories: total})
}

type GetDayRequest struct {
	UserID string `param:"user_id" validate:"required"`
	Date   string `param:"date" validate:"required"`
}

type GetDayResponse struct {
	Date     string      `json:"date"`
	WaterML  float64     `json:"water_ml"`
	Calories float64     `json:"calories"`
	Meals    []MealModel `json:"meals"`
}

func (s *Server) GetDay(c echo.Context) error {
	var req GetDayRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getTrackerUoW()

	day, err := s.trackerService.Day(c.Request().Context(), uow, req.UserID, req.Date)
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusOK, GetDayResponse{
		Date:     day.Date,
		WaterML:  day.WaterML,
		Calories: day.Calories,
		Meals:    lo.Map(day.Meals, func(m *record.Meal, _ int) MealModel { return mealModel(m) }),
	})
}

func mealModel(m *record.Meal) MealModel {
	return MealModel{
		MealID:   m.MealID,
		Date:     m.Date,
		Name:     m.Name,
		Calories: m.Calories,
		LoggedAt: m.LoggedAt,
	}
}
