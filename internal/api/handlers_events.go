package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
)

func (handler *Handler) listEvents(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Events.All())
}

func (handler *Handler) createEvent(ctx *fiber.Ctx) error {
	event := models.CalendarEvent{}
	if err := ctx.BodyParser(&event); err != nil {
		return badRequest(ctx, "invalid event payload")
	}
	if event.Title == "" {
		return badRequest(ctx, "title is required")
	}
	if event.Kind == "" {
		event.Kind = models.EventKindReminder
	}
	if event.Color == "" {
		event.Color = models.DefaultEventColor
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.Events.Add(event))
}

func (handler *Handler) updateEvent(ctx *fiber.Ctx) error {
	event := models.CalendarEvent{}
	if err := ctx.BodyParser(&event); err != nil {
		return badRequest(ctx, "invalid event payload")
	}
	event.ID = ctx.Params("id")
	updated, err := handler.organizer.Events.Update(event)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (handler *Handler) deleteEvent(ctx *fiber.Ctx) error {
	handler.organizer.Events.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) toggleEvent(ctx *fiber.Ctx) error {
	toggled, err := handler.organizer.Events.Toggle(ctx.Params("id"), func(event *models.CalendarEvent) {
		event.Completed = !event.Completed
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(toggled)
}
