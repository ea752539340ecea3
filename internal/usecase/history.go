package usecase

import "abcbank/internal/entity"

type History struct {
	transactions transactionRepository
}

func NewHistory(transactions transactionRepository) *History {
	return &History{
		transactions: transactions,
	}
}

func (h *History) Execute(username string) ([]entity.Transaction, error) {
	return h.transactions.History(username)
}
