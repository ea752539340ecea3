// Package account persists the account ledger in a flat CSV file.
// Every lookup is a full linear scan and every mutation rewrites the
// whole file, matching the on-disk format exactly.
package account

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
	"abcbank/internal/usecase/repository/csvfile"
)

var header = []string{"username", "password", "balance"}

type CSVRepository struct {
	path   string
	logger zerolog.Logger
}

func NewCSV(path string, logger zerolog.Logger) (*CSVRepository, error) {
	if err := csvfile.EnsureHeader(path, header); err != nil {
		return nil, err
	}
	return &CSVRepository{path: path, logger: logger}, nil
}

func (r *CSVRepository) Exists(username string) (bool, error) {
	rows, err := r.records()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row[0] == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *CSVRepository) Create(username, password string) error {
	if err := csvfile.Append(r.path, []string{username, password, "0.00"}); err != nil {
		return err
	}
	r.logger.Info().Str("username", username).Msg("Account created")
	return nil
}

func (r *CSVRepository) Get(username string) (entity.Account, error) {
	rows, err := r.records()
	if err != nil {
		return entity.Account{}, err
	}
	for _, row := range rows {
		if row[0] == username {
			return entity.Account{
				Username: row[0],
				Password: row[1],
				Balance:  entity.ParseBalance(row[2]),
			}, nil
		}
	}
	return entity.Account{}, entity.AccountNotFoundErr
}

// Balance returns 0.00 rather than an error when the account is missing
// or its stored balance does not parse.
func (r *CSVRepository) Balance(username string) (decimal.Decimal, error) {
	rows, err := r.records()
	if err != nil {
		return decimal.Decimal{}, err
	}
	for _, row := range rows {
		if row[0] == username {
			return entity.ParseBalance(row[2]), nil
		}
	}
	return decimal.Zero, nil
}

// SetBalance reads every row and rewrites the whole file with only the
// target row's balance replaced, preserving row order.
func (r *CSVRepository) SetBalance(username string, balance decimal.Decimal) error {
	balance = entity.Normalize(balance)

	rows, err := csvfile.Read(r.path)
	if err != nil {
		return err
	}

	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) >= 3 && row[0] == username {
			row[2] = balance.StringFixed(2)
		}
		out = append(out, row)
	}
	if err := csvfile.WriteAll(r.path, header, out); err != nil {
		return err
	}

	r.logger.Debug().
		Str("username", username).
		Str("balance", balance.StringFixed(2)).
		Msg("Balance updated")
	return nil
}

func (r *CSVRepository) records() ([][]string, error) {
	rows, err := csvfile.Read(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
