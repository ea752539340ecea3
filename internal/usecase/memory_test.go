package usecase

// In-memory repository fakes so usecase tests run without touching the
// filesystem.

import (
	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

type memoryAccounts struct {
	accounts map[string]*entity.Account
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{accounts: make(map[string]*entity.Account)}
}

func (m *memoryAccounts) Exists(username string) (bool, error) {
	_, ok := m.accounts[username]
	return ok, nil
}

func (m *memoryAccounts) Create(username, password string) error {
	m.accounts[username] = &entity.Account{
		Username: username,
		Password: password,
		Balance:  decimal.Zero,
	}
	return nil
}

func (m *memoryAccounts) Get(username string) (entity.Account, error) {
	a, ok := m.accounts[username]
	if !ok {
		return entity.Account{}, entity.AccountNotFoundErr
	}
	return *a, nil
}

func (m *memoryAccounts) Balance(username string) (decimal.Decimal, error) {
	a, ok := m.accounts[username]
	if !ok {
		return decimal.Zero, nil
	}
	return a.Balance, nil
}

func (m *memoryAccounts) SetBalance(username string, balance decimal.Decimal) error {
	if a, ok := m.accounts[username]; ok {
		a.Balance = entity.Normalize(balance)
	}
	return nil
}

type memoryTransactions struct {
	rows []entity.Transaction
}

func (m *memoryTransactions) Append(tx entity.Transaction) error {
	m.rows = append(m.rows, tx)
	return nil
}

func (m *memoryTransactions) History(username string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range m.rows {
		if tx.Username == username {
			out = append(out, tx)
		}
	}
	return out, nil
}
