package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/services"
)

func (handler *Handler) getMonthGrid(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	year, err := strconv.Atoi(ctx.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return badRequest(ctx, "invalid year")
	}
	monthNumber, err := strconv.Atoi(ctx.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNumber < 1 || monthNumber > 12 {
		return badRequest(ctx, "invalid month")
	}

	month := time.Date(year, time.Month(monthNumber), 1, 0, 0, 0, 0, handler.location)
	return ctx.JSON(services.BuildMonthDayStates(handler.organizer, handler.period, month, now))
}

func (handler *Handler) getWeekDays(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	anchor, err := handler.parseDayQuery(ctx, "date", now)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	days := make([]string, 0, 7)
	for _, day := range services.WeekDays(anchor) {
		days = append(days, services.DayKey(day))
	}
	return ctx.JSON(fiber.Map{"days": days})
}

// getDayRecords returns everything on one day plus the compact event
// preview used by day cells.
func (handler *Handler) getDayRecords(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	day, err := handler.parseDayQuery(ctx, "date", now)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}
	limit, err := strconv.Atoi(ctx.Query("limit", "3"))
	if err != nil || limit < 0 {
		return badRequest(ctx, "invalid limit")
	}

	events := services.RecordsOnDate(handler.organizer.Events.All(), day)
	shown, overflow := services.EventPreview(events, limit)

	return ctx.JSON(fiber.Map{
		"events":      events,
		"preview":     shown,
		"overflow":    overflow,
		"assignments": services.RecordsOnDate(handler.organizer.Assignments.All(), day),
		"tests":       services.RecordsOnDate(handler.organizer.Tests.All(), day),
		"projects":    services.RecordsOnDate(handler.organizer.Projects.All(), day),
		"sportEvents": services.RecordsOnDate(handler.organizer.SportEvents.All(), day),
		"choresDue":   handler.chores.DueOn(day),
	})
}

func (handler *Handler) getTomorrowReminders(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	return ctx.JSON(handler.reminders.UpcomingReminders(now))
}
