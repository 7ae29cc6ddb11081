package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/services"
)

func (handler *Handler) listPeriodEntries(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.period.Entries())
}

// listSymptomOptions serves the builtin symptom catalog the day editor
// offers as tags.
func (handler *Handler) listSymptomOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(models.DefaultSymptoms())
}

func (handler *Handler) getPeriodDay(ctx *fiber.Ctx) error {
	day, err := handler.parseDayParam(ctx, "date")
	if err != nil {
		return badRequest(ctx, "invalid date")
	}
	entry, found := handler.period.EntryOn(day)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no entry for day"})
	}
	return ctx.JSON(entry)
}

func (handler *Handler) upsertPeriodDay(ctx *fiber.Ctx) error {
	day, err := handler.parseDayParam(ctx, "date")
	if err != nil {
		return badRequest(ctx, "invalid date")
	}
	input := services.PeriodInput{}
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "invalid day payload")
	}
	if !validFlow(input.Flow) {
		return badRequest(ctx, "invalid flow value")
	}
	return ctx.JSON(handler.period.UpsertDay(day, input))
}

func (handler *Handler) deletePeriodDay(ctx *fiber.Ctx) error {
	day, err := handler.parseDayParam(ctx, "date")
	if err != nil {
		return badRequest(ctx, "invalid date")
	}
	handler.period.DeleteDay(day)
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) getCycleStats(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.period.Stats())
}

type cycleSettingsInput struct {
	CycleLength  int `json:"cycleLength"`
	PeriodLength int `json:"periodLength"`
}

func (handler *Handler) updateCycleSettings(ctx *fiber.Ctx) error {
	input := cycleSettingsInput{}
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "invalid settings payload")
	}
	if input.CycleLength < 0 || input.CycleLength > 120 || input.PeriodLength < 0 || input.PeriodLength > 30 {
		return badRequest(ctx, "cycle settings out of range")
	}
	return ctx.JSON(handler.period.SaveCycleSettings(input.CycleLength, input.PeriodLength))
}

func validFlow(flow string) bool {
	switch flow {
	case "", "none", "light", "medium", "heavy":
		return true
	default:
		return false
	}
}
