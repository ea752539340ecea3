package usecase

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

// PlaintextMatcher compares credentials by exact match. The stores keep
// passwords in clear text; a hashed scheme can replace this matcher
// without touching callers.
type PlaintextMatcher struct{}

func (PlaintextMatcher) Match(stored, supplied string) bool {
	return stored == supplied
}

type Register struct {
	accounts accountRepository
}

func NewRegister(accounts accountRepository) *Register {
	return &Register{
		accounts: accounts,
	}
}

func (r *Register) Execute(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return entity.EmptyCredentialsErr
	}

	exists, err := r.accounts.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return entity.DuplicateUserErr
	}

	return r.accounts.Create(username, password)
}

type Login struct {
	accounts accountRepository
	matcher  credentialMatcher
}

func NewLogin(accounts accountRepository, matcher credentialMatcher) *Login {
	return &Login{
		accounts: accounts,
		matcher:  matcher,
	}
}

// Execute resolves an unknown user and a wrong password to the same
// error so callers cannot tell the two apart.
func (l *Login) Execute(username, password string) (entity.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	account, err := l.accounts.Get(username)
	if err != nil {
		if errors.Is(err, entity.AccountNotFoundErr) {
			return entity.Account{}, entity.InvalidCredentialsErr
		}
		return entity.Account{}, err
	}
	if !l.matcher.Match(account.Password, password) {
		return entity.Account{}, entity.InvalidCredentialsErr
	}

	return account, nil
}

type CheckBalance struct {
	accounts accountRepository
}

func NewCheckBalance(accounts accountRepository) *CheckBalance {
	return &CheckBalance{
		accounts: accounts,
	}
}

func (c *CheckBalance) Execute(username string) (decimal.Decimal, error) {
	return c.accounts.Balance(username)
}
