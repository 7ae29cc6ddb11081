package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/store"
)

func (handler *Handler) listClasses(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Classes.All())
}

func (handler *Handler) createClass(ctx *fiber.Ctx) error {
	class := models.Class{}
	if err := ctx.BodyParser(&class); err != nil {
		return badRequest(ctx, "invalid class payload")
	}
	if class.Name == "" {
		return badRequest(ctx, "name is required")
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.Classes.Add(class))
}

func (handler *Handler) deleteClass(ctx *fiber.Ctx) error {
	if err := handler.education.RemoveClass(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) listClassWork(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.education.WorkForClass(ctx.Params("id")))
}

func (handler *Handler) listUpcomingWork(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.education.Upcoming())
}

func (handler *Handler) toggleWorkItem(ctx *fiber.Ctx) error {
	toggled, err := handler.education.ToggleCompleted(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(toggled)
}

// workItemCollection picks the collection behind the :kind route
// segment (assignments, tests or projects).
func (handler *Handler) workItemCollection(kind string) (*store.Collection[models.WorkItem, *models.WorkItem], string) {
	switch kind {
	case "assignments":
		return handler.organizer.Assignments, models.WorkKindAssignment
	case "tests":
		return handler.organizer.Tests, models.WorkKindTest
	case "projects":
		return handler.organizer.Projects, models.WorkKindProject
	default:
		return nil, ""
	}
}

func (handler *Handler) listWorkItems(ctx *fiber.Ctx) error {
	collection, _ := handler.workItemCollection(ctx.Params("kind"))
	if collection == nil {
		return badRequest(ctx, "unknown work item kind")
	}
	return ctx.JSON(collection.All())
}

func (handler *Handler) createWorkItem(ctx *fiber.Ctx) error {
	collection, kind := handler.workItemCollection(ctx.Params("kind"))
	if collection == nil {
		return badRequest(ctx, "unknown work item kind")
	}

	item := models.WorkItem{}
	if err := ctx.BodyParser(&item); err != nil {
		return badRequest(ctx, "invalid work item payload")
	}
	if item.Title == "" {
		return badRequest(ctx, "title is required")
	}
	if _, found := handler.organizer.Classes.Get(item.ClassID); !found {
		return badRequest(ctx, "unknown class")
	}
	item.Kind = kind
	return ctx.Status(fiber.StatusCreated).JSON(collection.Add(item))
}

func (handler *Handler) updateWorkItem(ctx *fiber.Ctx) error {
	collection, kind := handler.workItemCollection(ctx.Params("kind"))
	if collection == nil {
		return badRequest(ctx, "unknown work item kind")
	}

	item := models.WorkItem{}
	if err := ctx.BodyParser(&item); err != nil {
		return badRequest(ctx, "invalid work item payload")
	}
	item.ID = ctx.Params("id")
	item.Kind = kind
	updated, err := collection.Update(item)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (handler *Handler) deleteWorkItem(ctx *fiber.Ctx) error {
	collection, _ := handler.workItemCollection(ctx.Params("kind"))
	if collection == nil {
		return badRequest(ctx, "unknown work item kind")
	}
	collection.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
