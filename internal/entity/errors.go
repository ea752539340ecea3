package entity

import "errors"

var (
	AccountNotFoundErr    = errors.New("account not found")
	DuplicateUserErr      = errors.New("username already exists")
	EmptyCredentialsErr   = errors.New("username and password cannot be empty")
	InvalidCredentialsErr = errors.New("invalid credentials")
	InsufficientFundsErr  = errors.New("insufficient balance")
	SelfTransferErr       = errors.New("cannot transfer to yourself")
	UnknownRecipientErr   = errors.New("recipient does not exist")
)
