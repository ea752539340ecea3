package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func setup(t *testing.T, balances map[string]string) (*memoryAccounts, *memoryTransactions) {
	t.Helper()
	accounts := newMemoryAccounts()
	transactions := &memoryTransactions{}
	for username, balance := range balances {
		if err := accounts.Create(username, "pw"); err != nil {
			t.Fatal(err)
		}
		if err := accounts.SetBalance(username, dec(t, balance)); err != nil {
			t.Fatal(err)
		}
	}
	return accounts, transactions
}

func TestDepositThenWithdrawRoundTrip(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"alice": "40.00"})
	deposit := NewDeposit(accounts, transactions)
	withdraw := NewWithdraw(accounts, transactions)

	balance, err := deposit.Execute("alice", dec(t, "10.25"))
	if err != nil {
		t.Fatal(err)
	}
	if balance.StringFixed(2) != "50.25" {
		t.Fatalf("after deposit balance=%s want 50.25", balance.StringFixed(2))
	}

	balance, err = withdraw.Execute("alice", dec(t, "10.25"))
	if err != nil {
		t.Fatal(err)
	}
	if balance.StringFixed(2) != "40.00" {
		t.Fatalf("after withdraw balance=%s want 40.00", balance.StringFixed(2))
	}

	rows := transactions.rows
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}
	if rows[0].Type != entity.TypeDeposit || rows[0].Balance.StringFixed(2) != "50.25" || rows[0].Details != "Cash deposit" {
		t.Fatalf("rows[0]=%+v", rows[0])
	}
	if rows[1].Type != entity.TypeWithdraw || rows[1].Balance.StringFixed(2) != "40.00" || rows[1].Details != "Cash withdrawal" {
		t.Fatalf("rows[1]=%+v", rows[1])
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"alice": "10.00"})
	withdraw := NewWithdraw(accounts, transactions)

	if _, err := withdraw.Execute("alice", dec(t, "10.01")); !errors.Is(err, entity.InsufficientFundsErr) {
		t.Fatalf("err=%v want InsufficientFundsErr", err)
	}

	balance, _ := accounts.Balance("alice")
	if balance.StringFixed(2) != "10.00" {
		t.Fatalf("balance=%s, should be untouched", balance.StringFixed(2))
	}
	if len(transactions.rows) != 0 {
		t.Fatalf("rows=%d want 0", len(transactions.rows))
	}
}

func TestWithdrawExactBalance(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"alice": "10.00"})
	withdraw := NewWithdraw(accounts, transactions)

	balance, err := withdraw.Execute("alice", dec(t, "10.00"))
	if err != nil {
		t.Fatal(err)
	}
	if balance.StringFixed(2) != "0.00" {
		t.Fatalf("balance=%s want 0.00", balance.StringFixed(2))
	}
}

func TestDepositRejectsNonPositive(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"alice": "10.00"})
	deposit := NewDeposit(accounts, transactions)

	for _, amount := range []string{"0", "-1"} {
		if _, err := deposit.Execute("alice", dec(t, amount)); !errors.Is(err, entity.AmountNotPositiveErr) {
			t.Errorf("amount=%s err=%v want AmountNotPositiveErr", amount, err)
		}
	}
	if len(transactions.rows) != 0 {
		t.Fatalf("rows=%d want 0", len(transactions.rows))
	}
}

func TestTransfer(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{
		"xavier": "100.00",
		"yara":   "5.50",
	})
	transfer := NewTransfer(accounts, transactions)

	balance, err := transfer.Execute("xavier", "yara", dec(t, "25.25"))
	if err != nil {
		t.Fatal(err)
	}
	if balance.StringFixed(2) != "74.75" {
		t.Fatalf("sender balance=%s want 74.75", balance.StringFixed(2))
	}
	recipientBalance, _ := accounts.Balance("yara")
	if recipientBalance.StringFixed(2) != "30.75" {
		t.Fatalf("recipient balance=%s want 30.75", recipientBalance.StringFixed(2))
	}

	rows := transactions.rows
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}
	out, in := rows[0], rows[1]
	if out.Username != "xavier" || out.Type != entity.TypeTransferOut ||
		out.Balance.StringFixed(2) != "74.75" || out.Details != "To yara" {
		t.Fatalf("out row=%+v", out)
	}
	if in.Username != "yara" || in.Type != entity.TypeTransferIn ||
		in.Balance.StringFixed(2) != "30.75" || in.Details != "From xavier" {
		t.Fatalf("in row=%+v", in)
	}
}

func TestTransferSelf(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"xavier": "100.00"})
	transfer := NewTransfer(accounts, transactions)

	if _, err := transfer.Execute("xavier", "xavier", dec(t, "1")); !errors.Is(err, entity.SelfTransferErr) {
		t.Fatalf("err=%v want SelfTransferErr", err)
	}
	if len(transactions.rows) != 0 {
		t.Fatal("no rows expected")
	}
}

func TestTransferUnknownRecipient(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{"xavier": "100.00"})
	transfer := NewTransfer(accounts, transactions)

	if _, err := transfer.Execute("xavier", "ghost", dec(t, "1")); !errors.Is(err, entity.UnknownRecipientErr) {
		t.Fatalf("err=%v want UnknownRecipientErr", err)
	}
	balance, _ := accounts.Balance("xavier")
	if balance.StringFixed(2) != "100.00" {
		t.Fatalf("balance=%s, should be untouched", balance.StringFixed(2))
	}
	if len(transactions.rows) != 0 {
		t.Fatal("no rows expected")
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	accounts, transactions := setup(t, map[string]string{
		"xavier": "10.00",
		"yara":   "0.00",
	})
	transfer := NewTransfer(accounts, transactions)

	if _, err := transfer.Execute("xavier", "yara", dec(t, "10.01")); !errors.Is(err, entity.InsufficientFundsErr) {
		t.Fatalf("err=%v want InsufficientFundsErr", err)
	}
	senderBalance, _ := accounts.Balance("xavier")
	recipientBalance, _ := accounts.Balance("yara")
	if senderBalance.StringFixed(2) != "10.00" || recipientBalance.StringFixed(2) != "0.00" {
		t.Fatalf("balances %s/%s, should be untouched", senderBalance.StringFixed(2), recipientBalance.StringFixed(2))
	}
	if len(transactions.rows) != 0 {
		t.Fatal("no rows expected")
	}
}
