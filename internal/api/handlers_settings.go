package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
)

func (handler *Handler) getTabSettings(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Tabs.Get())
}

func (handler *Handler) updateTabSettings(ctx *fiber.Ctx) error {
	settings := models.TabSettings{}
	if err := ctx.BodyParser(&settings); err != nil {
		return badRequest(ctx, "invalid settings payload")
	}
	handler.organizer.Tabs.Set(settings)
	return ctx.JSON(settings)
}
