package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a ledger movement.
type Type string

const (
	TypeDeposit     Type = "DEPOSIT"
	TypeWithdraw    Type = "WITHDRAW"
	TypeTransferOut Type = "TRANSFER OUT"
	TypeTransferIn  Type = "TRANSFER IN"
)

type Transaction struct {
	Username string
	Date     time.Time
	Type     Type
	Amount   decimal.Decimal
	Balance  decimal.Decimal
	Details  string
}
