package gohitbtc

import (
	"time"

	"github.com/shopspring/decimal"
)

/*
	models about trade
*/

type Order struct {
	Id            int64           `json:"id"`
	ClientOrderId string          `json:"clientOrderId"`
	Symbol        string          `json:"symbol"`
	Side          string          `json:"side"`
	Status        string          `json:"status"`
	Type          string          `json:"type"`
	TimeInForce   string          `json:"timeInForce"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	StopPrice     decimal.Decimal `json:"stopPrice"`
	CumQuantity   decimal.Decimal `json:"cumQuantity"`
	PostOnly      bool            `json:"postOnly"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	// filled when the order is requested with wait, see GetOpenOrder
	TradesReport []Trade `json:"tradesReport,omitempty"`
}

// OrderRequest is sent verbatim as the request body. Quantities and prices
// stay strings so the caller controls the exact wire representation.
type OrderRequest struct {
	ClientOrderId  string `json:"clientOrderId,omitempty"`
	Symbol         string `json:"symbol"`
	Side           string `json:"side"`
	Type           string `json:"type,omitempty"`
	TimeInForce    string `json:"timeInForce,omitempty"`
	Quantity       string `json:"quantity"`
	Price          string `json:"price,omitempty"`
	StopPrice      string `json:"stopPrice,omitempty"`
	ExpireTime     string `json:"expireTime,omitempty"`
	StrictValidate bool   `json:"strictValidate,omitempty"`
	PostOnly       bool   `json:"postOnly,omitempty"`
}

type ReplaceRequest struct {
	Quantity        string `json:"quantity"`
	Price           string `json:"price"`
	RequestClientId string `json:"requestClientId"`
	StrictValidate  bool   `json:"strictValidate,omitempty"`
}

// Balance is the shape of both trading/balance and account/balance entries.
type Balance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
}

type TradeFee struct {
	TakeLiquidityRate    decimal.Decimal `json:"takeLiquidityRate"`
	ProvideLiquidityRate decimal.Decimal `json:"provideLiquidityRate"`
}

type Trade struct {
	Id            int64           `json:"id"`
	OrderId       int64           `json:"orderId"`
	ClientOrderId string          `json:"clientOrderId"`
	Symbol        string          `json:"symbol"`
	Side          string          `json:"side"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Fee           decimal.Decimal `json:"fee"`
	Timestamp     time.Time       `json:"timestamp"`
}
