package gohitbtc

import "net/url"

// api interface
type MarketRestAPI interface {

	// public api
	GetExchangeName() string
	GetSymbols() ([]*Symbol, []byte, error)
	GetSymbol(symbol string) (*Symbol, []byte, error)
	GetCurrencies() ([]*Currency, []byte, error)
	GetCurrency(currency string) (*Currency, []byte, error)
	GetCurrencyInfo(symbol string) (*Symbol, []byte, error)
	GetTickers() ([]*Ticker, []byte, error)
	GetTicker(symbol string) (*Ticker, []byte, error)
	GetTrades(symbol string, params url.Values) ([]*PublicTrade, []byte, error)
	GetOrderBook(symbol string, params url.Values) (*OrderBook, []byte, error)
	GetCandles(symbol string, params url.Values) ([]*Candle, []byte, error)
}

type TradingRestAPI interface {

	// private api
	GetOpenOrders(symbol string) ([]*Order, []byte, error)
	GetOpenOrder(clientOrderId string, params url.Values) (*Order, []byte, error)
	PlaceOrder(order *OrderRequest) (*Order, []byte, error)
	CreateOrder(clientOrderId string, order *OrderRequest) (*Order, []byte, error)
	ReplaceOrder(clientOrderId string, replace *ReplaceRequest) (*Order, []byte, error)
	CancelOrders(symbol string) ([]*Order, []byte, error)
	CancelOrder(clientOrderId string) (*Order, []byte, error)
	GetTradingBalance() ([]*Balance, []byte, error)
	GetTradingFee(symbol string) (*TradeFee, []byte, error)
	GetTradeHistory(params url.Values) ([]*Trade, []byte, error)
	GetOrderHistory(params url.Values) ([]*Order, []byte, error)
	GetOrderTrades(orderId int64) ([]*Trade, []byte, error)
}

type AccountRestAPI interface {

	// private api
	GetBalance() ([]*Balance, []byte, error)
	GetTransactions(params url.Values) ([]*Transaction, []byte, error)
	GetTransaction(id string) (*Transaction, []byte, error)
	Withdraw(withdraw *WithdrawRequest) (string, []byte, error)
	CommitWithdraw(id string) (bool, []byte, error)
	RollbackWithdraw(id string) (bool, []byte, error)
	GetDepositAddress(currency string) (*DepositAddress, []byte, error)
	NewDepositAddress(currency string) (*DepositAddress, []byte, error)
	Transfer(currency, amount, transferType string) (string, []byte, error)
}
