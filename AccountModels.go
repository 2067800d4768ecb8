package gohitbtc

import (
	"time"

	"github.com/shopspring/decimal"
)

/*
	models about account
*/

type Transaction struct {
	Id         string          `json:"id"`
	Index      int64           `json:"index"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	NetworkFee decimal.Decimal `json:"networkFee"`
	Address    string          `json:"address"`
	PaymentId  string          `json:"paymentId"`
	Hash       string          `json:"hash"`
	Status     string          `json:"status"`
	Type       string          `json:"type"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// WithdrawRequest is sent verbatim, amounts stay strings.
type WithdrawRequest struct {
	Currency   string `json:"currency"`
	Amount     string `json:"amount"`
	Address    string `json:"address"`
	PaymentId  string `json:"paymentId,omitempty"`
	NetworkFee string `json:"networkFee,omitempty"`
	IncludeFee bool   `json:"includeFee,omitempty"`
	AutoCommit *bool  `json:"autoCommit,omitempty"`
}

type WithdrawResult struct {
	Id string `json:"id"`
}

type WithdrawConfirm struct {
	Result bool `json:"result"`
}

type DepositAddress struct {
	Address   string `json:"address"`
	PaymentId string `json:"paymentId,omitempty"`
}

type TransferResult struct {
	Id string `json:"id"`
}
