package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/services"
)

func (handler *Handler) exportRange(ctx *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := ctx.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, handler.location)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := ctx.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, handler.location)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	return from, to, nil
}

func (handler *Handler) exportCSV(ctx *fiber.Ctx) error {
	from, to, err := handler.exportRange(ctx)
	if err != nil {
		return badRequest(ctx, "invalid date range")
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return respondError(ctx, err)
	}
	if err := writer.WriteAll(handler.export.CSVRows(from, to)); err != nil {
		return respondError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="period-history.csv"`)
	return ctx.Send(buffer.Bytes())
}

func (handler *Handler) exportJSON(ctx *fiber.Ctx) error {
	from, to, err := handler.exportRange(ctx)
	if err != nil {
		return badRequest(ctx, "invalid date range")
	}
	return ctx.JSON(fiber.Map{
		"summary": handler.export.Summary(from, to),
		"entries": handler.export.JSONEntries(from, to),
	})
}
