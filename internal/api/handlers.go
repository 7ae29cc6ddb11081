package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/services"
)

const dayLayout = "2006-01-02"

// Handler carries every service the routes need. Built once in main
// and shared across requests; all state lives in the services.
type Handler struct {
	organizer *services.Organizer
	period    *services.PeriodService
	education *services.EducationService
	budget    *services.BudgetService
	chores    *services.ChoreService
	sports    *services.SportsService
	reminders *services.ReminderService
	export    *services.ExportService
	location  *time.Location
}

func NewHandler(organizer *services.Organizer, location *time.Location, notifier services.Notifier) *Handler {
	if location == nil {
		location = time.Local
	}
	period := services.NewPeriodService(organizer)
	education := services.NewEducationService(organizer)
	return &Handler{
		organizer: organizer,
		period:    period,
		education: education,
		budget:    services.NewBudgetService(organizer),
		chores:    services.NewChoreService(organizer),
		sports:    services.NewSportsService(organizer),
		reminders: services.NewReminderService(organizer, education, notifier),
		export:    services.NewExportService(period),
		location:  location,
	}
}

// Reminders exposes the reminder service so main can start its loop.
func (handler *Handler) Reminders() *services.ReminderService {
	return handler.reminders
}

func (handler *Handler) parseDayParam(ctx *fiber.Ctx, name string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, ctx.Params(name), handler.location)
}

func (handler *Handler) parseDayQuery(ctx *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return time.ParseInLocation(dayLayout, raw, handler.location)
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrClassNotFound),
		errors.Is(err, services.ErrTeamNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCategoryInUse):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
