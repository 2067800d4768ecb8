package gohitbtc

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

/*
	models about API config
*/
type APIConfig struct {
	HttpClient   *http.Client
	Endpoint     string
	ApiKey       string
	ApiSecretKey string
	// ApiPassphrase only matters for the HMAC message-signing scheme, see UtilSign.go.
	// The REST client itself authenticates with HTTP basic auth.
	ApiPassphrase string
	Logger        *zap.SugaredLogger
}

/*
	models about market
*/

type Symbol struct {
	Id                   string          `json:"id"`
	BaseCurrency         string          `json:"baseCurrency"`
	QuoteCurrency        string          `json:"quoteCurrency"`
	QuantityIncrement    decimal.Decimal `json:"quantityIncrement"`
	TickSize             decimal.Decimal `json:"tickSize"`
	TakeLiquidityRate    decimal.Decimal `json:"takeLiquidityRate"`
	ProvideLiquidityRate decimal.Decimal `json:"provideLiquidityRate"`
	FeeCurrency          string          `json:"feeCurrency"`
}

type Currency struct {
	Id                 string          `json:"id"`
	FullName           string          `json:"fullName"`
	Crypto             bool            `json:"crypto"`
	PayinEnabled       bool            `json:"payinEnabled"`
	PayinPaymentId     bool            `json:"payinPaymentId"`
	PayinConfirmations int             `json:"payinConfirmations"`
	PayoutEnabled      bool            `json:"payoutEnabled"`
	PayoutIsPaymentId  bool            `json:"payoutIsPaymentId"`
	TransferEnabled    bool            `json:"transferEnabled"`
	Delisted           bool            `json:"delisted"`
	PayoutFee          decimal.Decimal `json:"payoutFee"`
}

// The price fields are pointers cause the exchange reports null on the
// market without a resting book.
type Ticker struct {
	Symbol      string           `json:"symbol"`
	Ask         *decimal.Decimal `json:"ask"`
	Bid         *decimal.Decimal `json:"bid"`
	Last        *decimal.Decimal `json:"last"`
	Open        *decimal.Decimal `json:"open"`
	Low         *decimal.Decimal `json:"low"`
	High        *decimal.Decimal `json:"high"`
	Volume      decimal.Decimal  `json:"volume"`
	VolumeQuote decimal.Decimal  `json:"volumeQuote"`
	Timestamp   time.Time        `json:"timestamp"`
}

type PublicTrade struct {
	Id        int64           `json:"id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Side      string          `json:"side"`
	Timestamp time.Time       `json:"timestamp"`
}

type BookLevel struct {
	Price decimal.Decimal `json:"price"`
	Size  decimal.Decimal `json:"size"`
}

type OrderBook struct {
	Ask []BookLevel `json:"ask"`
	Bid []BookLevel `json:"bid"`
}

type Candle struct {
	Timestamp   time.Time       `json:"timestamp"`
	Open        decimal.Decimal `json:"open"`
	Close       decimal.Decimal `json:"close"`
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
	Volume      decimal.Decimal `json:"volume"`
	VolumeQuote decimal.Decimal `json:"volumeQuote"`
}
