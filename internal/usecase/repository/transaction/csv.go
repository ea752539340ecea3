// Package transaction persists the append-only transaction log in a
// flat CSV file.
package transaction

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"abcbank/internal/entity"
	"abcbank/internal/usecase/repository/csvfile"
)

var header = []string{"username", "date", "type", "amount", "balance", "details"}

const dateLayout = "2006-01-02 15:04:05"

type CSVRepository struct {
	path   string
	logger zerolog.Logger
	now    func() time.Time
}

func NewCSV(path string, logger zerolog.Logger) (*CSVRepository, error) {
	if err := csvfile.EnsureHeader(path, header); err != nil {
		return nil, err
	}
	return &CSVRepository{path: path, logger: logger, now: time.Now}, nil
}

// Append stamps the current local time and writes one row. Rows are
// never updated or removed.
func (r *CSVRepository) Append(tx entity.Transaction) error {
	amount := entity.Normalize(tx.Amount)
	balance := entity.Normalize(tx.Balance)
	stamp := r.now().Format(dateLayout)

	row := []string{
		tx.Username,
		stamp,
		string(tx.Type),
		amount.StringFixed(2),
		balance.StringFixed(2),
		tx.Details,
	}
	if err := csvfile.Append(r.path, row); err != nil {
		return err
	}

	r.logger.Info().
		Str("username", tx.Username).
		Str("type", string(tx.Type)).
		Str("amount", amount.StringFixed(2)).
		Str("balance", balance.StringFixed(2)).
		Msg("Transaction recorded")
	return nil
}

// History returns the rows for one user in file order. A missing file
// or no matching rows yields an empty result, not an error.
func (r *CSVRepository) History(username string) ([]entity.Transaction, error) {
	rows, err := csvfile.Read(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var out []entity.Transaction
	for i, row := range rows {
		if i == 0 || len(row) < 6 || row[0] != username {
			continue
		}
		date, _ := time.ParseInLocation(dateLayout, row[1], time.Local)
		out = append(out, entity.Transaction{
			Username: row[0],
			Date:     date,
			Type:     entity.Type(row[2]),
			Amount:   entity.ParseBalance(row[3]),
			Balance:  entity.ParseBalance(row[4]),
			Details:  row[5],
		})
	}
	return out, nil
}
