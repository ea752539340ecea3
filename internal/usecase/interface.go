package usecase

import (
	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

type accountRepository interface {
	Exists(username string) (bool, error)
	Create(username, password string) error
	Get(username string) (entity.Account, error)
	// Balance returns 0.00 for unknown accounts; callers validate
	// existence first.
	Balance(username string) (decimal.Decimal, error)
	SetBalance(username string, balance decimal.Decimal) error
}

type transactionRepository interface {
	Append(entity.Transaction) error
	History(username string) ([]entity.Transaction, error)
}

type credentialMatcher interface {
	Match(stored, supplied string) bool
}
