package entity

import "github.com/shopspring/decimal"

type Account struct {
	Username string
	Password string
	Balance  decimal.Decimal
}
