package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/shopspring/decimal"
)

type transactionInput struct {
	// Signed carries the display-form amount: negative for expenses.
	Signed      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId"`
	CardID      string          `json:"cardId"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Payee       string          `json:"payee"`
}

func (handler *Handler) listTransactions(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Transactions.All())
}

func (handler *Handler) createTransaction(ctx *fiber.Ctx) error {
	input := transactionInput{}
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "invalid transaction payload")
	}
	if _, found := handler.organizer.Categories.Get(input.CategoryID); !found {
		return badRequest(ctx, "unknown category")
	}
	day, err := time.ParseInLocation(dayLayout, input.Date, handler.location)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	transaction := models.Transaction{
		CategoryID:  input.CategoryID,
		CardID:      input.CardID,
		Date:        day,
		Description: input.Description,
		Payee:       input.Payee,
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.budget.AddSigned(transaction, input.Signed))
}

func (handler *Handler) deleteTransaction(ctx *fiber.Ctx) error {
	handler.organizer.Transactions.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) listCategories(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.budget.CategoryTotals())
}

func (handler *Handler) createCategory(ctx *fiber.Ctx) error {
	category := models.BudgetCategory{}
	if err := ctx.BodyParser(&category); err != nil {
		return badRequest(ctx, "invalid category payload")
	}
	if category.Name == "" {
		return badRequest(ctx, "name is required")
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.Categories.Add(category))
}

func (handler *Handler) deleteCategory(ctx *fiber.Ctx) error {
	if err := handler.budget.RemoveCategory(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) getMonthlySummary(ctx *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	month, err := handler.parseDayQuery(ctx, "month", now)
	if err != nil {
		return badRequest(ctx, "invalid month")
	}
	return ctx.JSON(handler.budget.MonthlySummary(month))
}

func (handler *Handler) listCards(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.Cards.All())
}

func (handler *Handler) createCard(ctx *fiber.Ctx) error {
	card := models.Card{}
	if err := ctx.BodyParser(&card); err != nil {
		return badRequest(ctx, "invalid card payload")
	}
	if card.Name == "" {
		return badRequest(ctx, "name is required")
	}
	if card.Kind == "" {
		card.Kind = models.CardDebit
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.Cards.Add(card))
}

func (handler *Handler) deleteCard(ctx *fiber.Ctx) error {
	handler.budget.RemoveCard(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) listSavingsAccounts(ctx *fiber.Ctx) error {
	return ctx.JSON(handler.organizer.SavingsAccounts.All())
}

func (handler *Handler) createSavingsAccount(ctx *fiber.Ctx) error {
	account := models.SavingsAccount{}
	if err := ctx.BodyParser(&account); err != nil {
		return badRequest(ctx, "invalid account payload")
	}
	if account.Name == "" {
		return badRequest(ctx, "name is required")
	}
	return ctx.Status(fiber.StatusCreated).JSON(handler.organizer.SavingsAccounts.Add(account))
}

func (handler *Handler) deleteSavingsAccount(ctx *fiber.Ctx) error {
	handler.budget.RemoveSavingsAccount(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

type savingsInput struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Note   string          `json:"note"`
}

func (handler *Handler) createSavingsTransaction(ctx *fiber.Ctx) error {
	input := savingsInput{}
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "invalid savings payload")
	}
	if input.Kind != models.SavingsDeposit && input.Kind != models.SavingsWithdraw {
		return badRequest(ctx, "kind must be deposit or withdraw")
	}
	if input.Amount.IsNegative() {
		return badRequest(ctx, "amount must be non-negative")
	}
	day, err := time.ParseInLocation(dayLayout, input.Date, handler.location)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	stored, err := handler.budget.RecordSavings(models.SavingsTransaction{
		AccountID: ctx.Params("id"),
		Kind:      input.Kind,
		Amount:    input.Amount,
		Date:      day,
		Note:      input.Note,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(stored)
}
