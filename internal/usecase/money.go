package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

type Deposit struct {
	accounts     accountRepository
	transactions transactionRepository
}

func NewDeposit(accounts accountRepository, transactions transactionRepository) *Deposit {
	return &Deposit{
		accounts:     accounts,
		transactions: transactions,
	}
}

func (d *Deposit) Execute(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, entity.AmountNotPositiveErr
	}
	amount = entity.Normalize(amount)

	balance, err := d.accounts.Balance(username)
	if err != nil {
		return decimal.Decimal{}, err
	}
	balance = balance.Add(amount)

	if err := d.accounts.SetBalance(username, balance); err != nil {
		return decimal.Decimal{}, err
	}
	if err := d.transactions.Append(entity.Transaction{
		Username: username,
		Type:     entity.TypeDeposit,
		Amount:   amount,
		Balance:  balance,
		Details:  "Cash deposit",
	}); err != nil {
		return decimal.Decimal{}, err
	}

	return balance, nil
}

type Withdraw struct {
	accounts     accountRepository
	transactions transactionRepository
}

func NewWithdraw(accounts accountRepository, transactions transactionRepository) *Withdraw {
	return &Withdraw{
		accounts:     accounts,
		transactions: transactions,
	}
}

func (w *Withdraw) Execute(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, entity.AmountNotPositiveErr
	}
	amount = entity.Normalize(amount)

	balance, err := w.accounts.Balance(username)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.GreaterThan(balance) {
		return decimal.Decimal{}, entity.InsufficientFundsErr
	}
	balance = balance.Sub(amount)

	if err := w.accounts.SetBalance(username, balance); err != nil {
		return decimal.Decimal{}, err
	}
	if err := w.transactions.Append(entity.Transaction{
		Username: username,
		Type:     entity.TypeWithdraw,
		Amount:   amount,
		Balance:  balance,
		Details:  "Cash withdrawal",
	}); err != nil {
		return decimal.Decimal{}, err
	}

	return balance, nil
}

type Transfer struct {
	accounts     accountRepository
	transactions transactionRepository
}

func NewTransfer(accounts accountRepository, transactions transactionRepository) *Transfer {
	return &Transfer{
		accounts:     accounts,
		transactions: transactions,
	}
}

// Execute debits the sender and credits the recipient as two independent
// writes with no rollback in between. Both balances are read once before
// either write and reused for the transaction records.
func (t *Transfer) Execute(sender, recipient string, amount decimal.Decimal) (decimal.Decimal, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == sender {
		return decimal.Decimal{}, entity.SelfTransferErr
	}
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, entity.AmountNotPositiveErr
	}
	amount = entity.Normalize(amount)

	exists, err := t.accounts.Exists(recipient)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !exists {
		return decimal.Decimal{}, entity.UnknownRecipientErr
	}

	senderBalance, err := t.accounts.Balance(sender)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.GreaterThan(senderBalance) {
		return decimal.Decimal{}, entity.InsufficientFundsErr
	}
	recipientBalance, err := t.accounts.Balance(recipient)
	if err != nil {
		return decimal.Decimal{}, err
	}

	senderBalance = senderBalance.Sub(amount)
	recipientBalance = recipientBalance.Add(amount)

	if err := t.accounts.SetBalance(sender, senderBalance); err != nil {
		return decimal.Decimal{}, err
	}
	if err := t.accounts.SetBalance(recipient, recipientBalance); err != nil {
		return decimal.Decimal{}, err
	}

	if err := t.transactions.Append(entity.Transaction{
		Username: sender,
		Type:     entity.TypeTransferOut,
		Amount:   amount,
		Balance:  senderBalance,
		Details:  "To " + recipient,
	}); err != nil {
		return decimal.Decimal{}, err
	}
	if err := t.transactions.Append(entity.Transaction{
		Username: recipient,
		Type:     entity.TypeTransferIn,
		Amount:   amount,
		Balance:  recipientBalance,
		Details:  "From " + sender,
	}); err != nil {
		return decimal.Decimal{}, err
	}

	return senderBalance, nil
}
