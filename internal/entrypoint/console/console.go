// Package console drives the interactive menus on top of the banking
// usecases. All reads and writes go through injected streams so tests
// can script whole sessions.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"abcbank/internal/entity"
	"abcbank/internal/usecase"
)

const dateLayout = "2006-01-02 15:04:05"

type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger

	registerUsecase     *usecase.Register
	loginUsecase        *usecase.Login
	depositUsecase      *usecase.Deposit
	withdrawUsecase     *usecase.Withdraw
	transferUsecase     *usecase.Transfer
	checkBalanceUsecase *usecase.CheckBalance
	historyUsecase      *usecase.History
}

func New(
	in io.Reader,
	out io.Writer,
	logger zerolog.Logger,
	registerUsecase *usecase.Register,
	loginUsecase *usecase.Login,
	depositUsecase *usecase.Deposit,
	withdrawUsecase *usecase.Withdraw,
	transferUsecase *usecase.Transfer,
	checkBalanceUsecase *usecase.CheckBalance,
	historyUsecase *usecase.History,
) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,

		registerUsecase:     registerUsecase,
		loginUsecase:        loginUsecase,
		depositUsecase:      depositUsecase,
		withdrawUsecase:     withdrawUsecase,
		transferUsecase:     transferUsecase,
		checkBalanceUsecase: checkBalanceUsecase,
		historyUsecase:      historyUsecase,
	}
}

// Run loops over the top-level menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n=== ABC Banking System ===\n")
		c.printf("1. Register\n")
		c.printf("2. Login\n")
		c.printf("3. Exit\n")

		choice, ok := c.prompt("Choose an option (1-3): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			c.runRegister()
		case "2":
			if username, ok := c.runLogin(); ok {
				c.runSession(ctx, username)
			}
		case "3":
			c.printf("Goodbye!\n")
			return nil
		default:
			c.printf("Invalid option. Please choose 1-3.\n")
		}
	}
}

func (c *Console) runRegister() {
	c.printf("\n=== Register ===\n")
	username, ok := c.prompt("Choose a username: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Choose a password: ")
	if !ok {
		return
	}

	if err := c.registerUsecase.Execute(username, password); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Account created for %s. You can now log in.\n", strings.TrimSpace(username))
}

func (c *Console) runLogin() (string, bool) {
	c.printf("\n=== Login ===\n")
	username, ok := c.prompt("Username: ")
	if !ok {
		return "", false
	}
	password, ok := c.prompt("Password: ")
	if !ok {
		return "", false
	}

	account, err := c.loginUsecase.Execute(username, password)
	if err != nil {
		if errors.Is(err, entity.InvalidCredentialsErr) {
			c.printf("Invalid credentials. Please try again.\n")
		} else {
			c.reportError(err)
		}
		return "", false
	}
	c.printf("Welcome back, %s!\n", account.Username)
	return account.Username, true
}

func (c *Console) runSession(ctx context.Context, username string) {
	sessionID := uuid.New().String()
	log := c.logger.With().
		Str("session_id", sessionID).
		Str("username", username).
		Logger()
	log.Info().Msg("Session started")

	for {
		if ctx.Err() != nil {
			return
		}

		c.printf("\n=== ABC Banking System ===\n")
		c.printf("1. Deposit\n")
		c.printf("2. Withdraw\n")
		c.printf("3. Transfer\n")
		c.printf("4. Check Balance\n")
		c.printf("5. Transaction History\n")
		c.printf("6. Logout\n")

		choice, ok := c.prompt("Choose an option (1-6): ")
		if !ok {
			log.Info().Msg("Session ended")
			return
		}
		switch choice {
		case "1":
			c.runDeposit(username)
		case "2":
			c.runWithdraw(username)
		case "3":
			c.runTransfer(username)
		case "4":
			c.runCheckBalance(username)
		case "5":
			c.runHistory(username)
		case "6":
			c.printf("Logging out...\n")
			log.Info().Msg("Session ended")
			return
		default:
			c.printf("Invalid option. Please choose 1-6.\n")
		}
	}
}

func (c *Console) runDeposit(username string) {
	for {
		c.printf("\n=== Deposit ===\n")
		amount, ok, flow := c.promptAmount("Enter amount to deposit: ", "deposit")
		if !ok {
			if flow == flowBack {
				return
			}
			continue
		}

		balance, err := c.depositUsecase.Execute(username, amount)
		if err != nil {
			c.reportError(err)
			if c.askRepeatOrBack("deposit") == flowBack {
				return
			}
			continue
		}
		c.printf("Deposited %s. New balance: %s.\n", amount.StringFixed(2), balance.StringFixed(2))

		if c.askRepeatOrBack("deposit") == flowBack {
			return
		}
	}
}

func (c *Console) runWithdraw(username string) {
	for {
		c.printf("\n=== Withdraw ===\n")
		amount, ok, flow := c.promptAmount("Enter amount to withdraw: ", "withdraw")
		if !ok {
			if flow == flowBack {
				return
			}
			continue
		}

		balance, err := c.withdrawUsecase.Execute(username, amount)
		if err != nil {
			c.reportError(err)
			if c.askRepeatOrBack("withdraw") == flowBack {
				return
			}
			continue
		}
		c.printf("Withdrew %s. New balance: %s.\n", amount.StringFixed(2), balance.StringFixed(2))

		if c.askRepeatOrBack("withdraw") == flowBack {
			return
		}
	}
}

func (c *Console) runTransfer(username string) {
	for {
		c.printf("\n=== Transfer ===\n")
		recipient, ok := c.prompt("Enter recipient username: ")
		if !ok {
			return
		}
		amount, ok, flow := c.promptAmount("Enter amount to transfer: ", "transfer")
		if !ok {
			if flow == flowBack {
				return
			}
			continue
		}

		balance, err := c.transferUsecase.Execute(username, recipient, amount)
		if err != nil {
			c.reportError(err)
			if c.askRepeatOrBack("transfer") == flowBack {
				return
			}
			continue
		}
		c.printf("Transferred %s to %s. Your new balance: %s.\n",
			amount.StringFixed(2), recipient, balance.StringFixed(2))

		if c.askRepeatOrBack("transfer") == flowBack {
			return
		}
	}
}

func (c *Console) runCheckBalance(username string) {
	balance, err := c.checkBalanceUsecase.Execute(username)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nCurrent balance: %s\n", balance.StringFixed(2))
	c.askBack()
}

func (c *Console) runHistory(username string) {
	c.printf("\n=== Transaction History ===\n")
	transactions, err := c.historyUsecase.Execute(username)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(transactions) == 0 {
		c.printf("No transactions found.\n")
		return
	}

	c.printf("%-19s | %-12s | %-10s | %-10s | Details\n", "Date", "Type", "Amount", "Balance")
	c.printf("%s\n", strings.Repeat("-", 70))
	for _, tx := range transactions {
		c.printf("%-19s | %-12s | %-10s | %-10s | %s\n",
			tx.Date.Format(dateLayout),
			tx.Type,
			tx.Amount.StringFixed(2),
			tx.Balance.StringFixed(2),
			tx.Details)
	}
	c.askBack()
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) reportError(err error) {
	c.printf("%s.\n", capitalize(err.Error()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
