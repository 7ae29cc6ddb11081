package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
)

func (handler *Handler) listChores(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Chores.All())
}

func (handler *Handler) createChore(ctx *fiber.Ctx) error {
	chore := models.Chore{}
	if err := ctx.BodyParser(&chore); err != nil {
		return badRequest(ctx, "invalid chore payload")
	}
	if chore.Name == "" {
		return badRequest(ctx, "name is required")
	}
	if chore.Frequency == "" {
		chore.Frequency = models.ChoreWeekly
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.Chores.Add(chore))
}

func (handler *Handler) updateChore(ctx *fiber.Ctx) error {
	chore := models.Chore{}
	if err := ctx.BodyParser(&chore); err != nil {
		return badRequest(ctx, "invalid chore payload")
	}
	chore.ID = ctx.Params("id")
	updated, err := handler.organizer.Chores.Update(chore)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (handler *Handler) deleteChore(ctx *fiber.Ctx) error {
	handler.organizer.Chores.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) toggleChore(ctx *fiber.Ctx) error {
	toggled, err := handler.chores.ToggleDone(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(toggled)
}

func (handler *Handler) listChoresDue(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	day, err := handler.parseDayQuery(ctx, "date", now)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}
	return ctx.JSON(fiber.Map{
		"due":    handler.chores.DueOn(day),
		"points": handler.chores.PointsEarned(),
	})
}
