package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction keeps Kind and a non-negative Amount instead of a signed
// number. The sign only exists at the presentation boundary, via
// SignedAmount and TransactionFromSigned.
type Transaction struct {
	Record
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId"`
	CardID      string          `json:"cardId,omitempty"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Payee       string          `json:"payee,omitempty"`
}

func (t Transaction) Day() time.Time { return t.Date }

// SignedAmount renders the transaction the way ledgers display it:
// expenses negative, income positive.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NormalizeSigned folds a signed display amount into the tagged form:
// a negative amount means an expense of its absolute value.
func (t Transaction) NormalizeSigned(signed decimal.Decimal) Transaction {
	if signed.IsNegative() {
		t.Kind = TransactionExpense
		t.Amount = signed.Abs()
		return t
	}
	t.Kind = TransactionIncome
	t.Amount = signed
	return t
}

type BudgetCategory struct {
	Record
	Name         string          `json:"name"`
	Color        string          `json:"color,omitempty"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
}

const (
	CardCredit = "credit"
	CardDebit  = "debit"
)

type Card struct {
	Record
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Last4 string `json:"last4,omitempty"`
}

type SavingsAccount struct {
	Record
	Name    string          `json:"name"`
	Goal    decimal.Decimal `json:"goal"`
	Balance decimal.Decimal `json:"balance"`
}

const (
	SavingsDeposit  = "deposit"
	SavingsWithdraw = "withdraw"
)

type SavingsTransaction struct {
	Record
	AccountID string          `json:"accountId"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note,omitempty"`
}

func (t SavingsTransaction) Day() time.Time { return t.Date }
