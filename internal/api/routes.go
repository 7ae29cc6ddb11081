package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/events", handler.listEvents)
	api.Post("/events", handler.createEvent)
	api.Put("/events/:id", handler.updateEvent)
	api.Delete("/events/:id", handler.deleteEvent)
	api.Post("/events/:id/toggle", handler.toggleEvent)

	api.Get("/classes", handler.listClasses)
	api.Post("/classes", handler.createClass)
	api.Delete("/classes/:id", handler.deleteClass)
	api.Get("/classes/:id/work", handler.listClassWork)
	api.Get("/work/upcoming", handler.listUpcomingWork)
	api.Post("/work/:id/toggle", handler.toggleWorkItem)
	api.Get("/work/:kind", handler.listWorkItems)
	api.Post("/work/:kind", handler.createWorkItem)
	api.Put("/work/:kind/:id", handler.updateWorkItem)
	api.Delete("/work/:kind/:id", handler.deleteWorkItem)

	api.Get("/period/entries", handler.listPeriodEntries)
	api.Get("/period/symptoms", handler.listSymptomOptions)
	api.Get("/period/days/:date", handler.getPeriodDay)
	api.Put("/period/days/:date", handler.upsertPeriodDay)
	api.Delete("/period/days/:date", handler.deletePeriodDay)
	api.Get("/period/stats", handler.getCycleStats)
	api.Put("/period/settings", handler.updateCycleSettings)

	api.Get("/calendar/month", handler.getMonthGrid)
	api.Get("/calendar/week", handler.getWeekDays)
	api.Get("/calendar/day", handler.getDayRecords)
	api.Get("/reminders/tomorrow", handler.getTomorrowReminders)

	api.Get("/teams", handler.listTeams)
	api.Post("/teams", handler.createTeam)
	api.Delete("/teams/:id", handler.deleteTeam)
	api.Get("/sport-events", handler.listSportEvents)
	api.Post("/sport-events", handler.createSportEvent)
	api.Put("/sport-events/:id", handler.updateSportEvent)
	api.Delete("/sport-events/:id", handler.deleteSportEvent)

	api.Get("/chores", handler.listChores)
	api.Post("/chores", handler.createChore)
	api.Put("/chores/:id", handler.updateChore)
	api.Delete("/chores/:id", handler.deleteChore)
	api.Post("/chores/:id/toggle", handler.toggleChore)
	api.Get("/chores/due", handler.listChoresDue)

	api.Get("/transactions", handler.listTransactions)
	api.Post("/transactions", handler.createTransaction)
	api.Delete("/transactions/:id", handler.deleteTransaction)
	api.Get("/categories", handler.listCategories)
	api.Post("/categories", handler.createCategory)
	api.Delete("/categories/:id", handler.deleteCategory)
	api.Get("/budget/summary", handler.getMonthlySummary)
	api.Get("/cards", handler.listCards)
	api.Post("/cards", handler.createCard)
	api.Delete("/cards/:id", handler.deleteCard)
	api.Get("/savings", handler.listSavingsAccounts)
	api.Post("/savings", handler.createSavingsAccount)
	api.Delete("/savings/:id", handler.deleteSavingsAccount)
	api.Post("/savings/:id/transactions", handler.createSavingsTransaction)

	api.Get("/export/csv", handler.exportCSV)
	api.Get("/export/json", handler.exportJSON)

	api.Get("/settings/tabs", handler.getTabSettings)
	api.Put("/settings/tabs", handler.updateTabSettings)
}
