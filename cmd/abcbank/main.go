package main

import (
	"context"
	"os"

	"abcbank/internal/config"
	"abcbank/internal/entrypoint/console"
	"abcbank/internal/usecase"
	"abcbank/internal/usecase/repository/account"
	"abcbank/internal/usecase/repository/transaction"
	"abcbank/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	accounts, err := account.NewCSV(cfg.AccountsFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.AccountsFile).Msg("Failed to open accounts file")
	}
	transactions, err := transaction.NewCSV(cfg.TransactionsFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.TransactionsFile).Msg("Failed to open transactions file")
	}

	registerUsecase := usecase.NewRegister(accounts)
	loginUsecase := usecase.NewLogin(accounts, usecase.PlaintextMatcher{})
	depositUsecase := usecase.NewDeposit(accounts, transactions)
	withdrawUsecase := usecase.NewWithdraw(accounts, transactions)
	transferUsecase := usecase.NewTransfer(accounts, transactions)
	checkBalanceUsecase := usecase.NewCheckBalance(accounts)
	historyUsecase := usecase.NewHistory(transactions)

	ui := console.New(os.Stdin, os.Stdout, log,
		registerUsecase,
		loginUsecase,
		depositUsecase,
		withdrawUsecase,
		transferUsecase,
		checkBalanceUsecase,
		historyUsecase,
	)

	if err := ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Console session failed")
	}
}
