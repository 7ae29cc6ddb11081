package services

import (
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
	"github.com/shopspring/decimal"
)

type BudgetService struct {
	organizer *Organizer
}

// CategorySummary is one row of the per-category spending breakdown.
type CategorySummary struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
	OverLimit  bool            `json:"overLimit"`
}

// MonthSummary totals one calendar month of transactions.
type MonthSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

func NewBudgetService(organizer *Organizer) *BudgetService {
	return &BudgetService{organizer: organizer}
}

// AddSigned folds a signed display amount into the tagged form before
// storing: negative means expense, non-negative means income.
func (service *BudgetService) AddSigned(transaction models.Transaction, signed decimal.Decimal) models.Transaction {
	return service.organizer.Transactions.Add(transaction.NormalizeSigned(signed))
}

// CategorySpent accumulates the absolute value of every expense in
// the category.
func (service *BudgetService) CategorySpent(categoryID string) decimal.Decimal {
	spent := decimal.Zero
	for _, transaction := range service.organizer.Transactions.All() {
		if transaction.CategoryID == categoryID && transaction.Kind == models.TransactionExpense {
			spent = spent.Add(transaction.Amount)
		}
	}
	return spent
}

// CategoryTotals builds the breakdown for every category, in category
// insertion order.
func (service *BudgetService) CategoryTotals() []CategorySummary {
	summaries := make([]CategorySummary, 0)
	for _, category := range service.organizer.Categories.All() {
		spent := service.CategorySpent(category.ID)
		summaries = append(summaries, CategorySummary{
			CategoryID: category.ID,
			Name:       category.Name,
			Spent:      spent,
			Limit:      category.MonthlyLimit,
			OverLimit:  category.MonthlyLimit.IsPositive() && spent.GreaterThan(category.MonthlyLimit),
		})
	}
	return summaries
}

// MonthlySummary totals income and expenses for the month containing
// the given date.
func (service *BudgetService) MonthlySummary(month time.Time) MonthSummary {
	summary := MonthSummary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, transaction := range service.organizer.Transactions.All() {
		if transaction.Date.Year() != month.Year() || transaction.Date.Month() != month.Month() {
			continue
		}
		if transaction.Kind == models.TransactionExpense {
			summary.Expenses = summary.Expenses.Add(transaction.Amount)
		} else {
			summary.Income = summary.Income.Add(transaction.Amount)
		}
	}
	summary.Net = summary.Income.Sub(summary.Expenses)
	return summary
}

// RemoveCategory refuses while transactions still reference the
// category, per the cascade table.
func (service *BudgetService) RemoveCategory(categoryID string) error {
	if err := service.organizer.Cascade(storage.NamespaceBudgetCategories, categoryID); err != nil {
		return err
	}
	service.organizer.Categories.Remove(categoryID)
	return nil
}

// RemoveCard keeps the card's transactions but clears their card
// reference, per the cascade table.
func (service *BudgetService) RemoveCard(cardID string) {
	// no refusing rule exists for cards, the cascade cannot fail
	if err := service.organizer.Cascade(storage.NamespaceCards, cardID); err != nil {
		return
	}
	service.organizer.Cards.Remove(cardID)
}

// RecordSavings stores a savings transaction and adjusts the account
// balance: deposits add, withdrawals subtract.
func (service *BudgetService) RecordSavings(entry models.SavingsTransaction) (models.SavingsTransaction, error) {
	account, found := service.organizer.SavingsAccounts.Get(entry.AccountID)
	if !found {
		return models.SavingsTransaction{}, ErrNotFound
	}

	stored := service.organizer.SavingsTransactions.Add(entry)
	if entry.Kind == models.SavingsWithdraw {
		account.Balance = account.Balance.Sub(entry.Amount)
	} else {
		account.Balance = account.Balance.Add(entry.Amount)
	}
	if _, err := service.organizer.SavingsAccounts.Update(account); err != nil {
		return stored, err
	}
	return stored, nil
}

// RemoveSavingsAccount cascades to the account's transactions.
func (service *BudgetService) RemoveSavingsAccount(accountID string) {
	if err := service.organizer.Cascade(storage.NamespaceSavingsAccounts, accountID); err != nil {
		return
	}
	service.organizer.SavingsAccounts.Remove(accountID)
}
