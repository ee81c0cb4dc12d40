package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType says which side of the ledger a transaction falls on.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is one normalized bank-statement movement.
//
// The sign of Amount encodes direction: positive is a credit (income),
// negative is a debit (expense). Zero-amount rows never survive ingestion.
// Balance is carried through from the source statement when a running-balance
// column exists; it is informational only and never used for arithmetic.
type Transaction struct {
	ID           string           `json:"id"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	Category     string           `json:"category"`
	Type         TransactionType  `json:"type"`
	IncomeSource string           `json:"incomeSource,omitempty"`
	Balance      *decimal.Decimal `json:"balance,omitempty"`
}
