package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
)

func (handler *Handler) listTeams(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.SportTeams.All())
}

func (handler *Handler) createTeam(ctx *fiber.Ctx) error {
	team := models.SportTeam{}
	if err := ctx.BodyParser(&team); err != nil {
		return badRequest(ctx, "invalid team payload")
	}
	if team.Name == "" {
		return badRequest(ctx, "name is required")
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.SportTeams.Add(team))
}

func (handler *Handler) deleteTeam(ctx *fiber.Ctx) error {
	if err := handler.sports.RemoveTeam(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) listSportEvents(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	if ctx.QueryBool("upcoming") {
		return ctx.JSON(handler.sports.Upcoming(ctx.Query("teamId"), now))
	}
	return ctx.JSON(handler.organizer.SportEvents.All())
}

func (handler *Handler) createSportEvent(ctx *fiber.Ctx) error {
	event := models.SportEvent{}
	if err := ctx.BodyParser(&event); err != nil {
		return badRequest(ctx, "invalid sport event payload")
	}
	if _, found := handler.organizer.SportTeams.Get(event.TeamID); !found {
		return badRequest(ctx, "unknown team")
	}
	if event.Kind == "" {
		event.Kind = models.SportEventPractice
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.SportEvents.Add(event))
}

func (handler *Handler) updateSportEvent(ctx *fiber.Ctx) error {
	event := models.SportEvent{}
	if err := ctx.BodyParser(&event); err != nil {
		return badRequest(ctx, "invalid sport event payload")
	}
	event.ID = ctx.Params("id")
	updated, err := handler.organizer.SportEvents.Update(event)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (handler *Handler) deleteSportEvent(ctx *fiber.Ctx) error {
	handler.organizer.SportEvents.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
