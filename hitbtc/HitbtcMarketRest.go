package hitbtc

import (
	"net/http"
	"net/url"

	. "github.com/deforceHK/gohitbtc"
)

type Market struct {
	*HitBTC
}

func (this *Market) GetSymbols() ([]*Symbol, []byte, error) {
	var symbols []*Symbol
	resp, err := this.DoRequest(http.MethodGet, "/public/symbol", nil, &symbols)
	if err != nil {
		return nil, resp, err
	}
	return symbols, resp, nil
}

func (this *Market) GetSymbol(symbol string) (*Symbol, []byte, error) {
	var result = new(Symbol)
	resp, err := this.DoRequest(http.MethodGet, "/public/symbol/"+symbol, nil, result)
	if err != nil {
		return nil, resp, err
	}
	return result, resp, nil
}

func (this *Market) GetCurrencies() ([]*Currency, []byte, error) {
	var currencies []*Currency
	resp, err := this.DoRequest(http.MethodGet, "/public/currency", nil, &currencies)
	if err != nil {
		return nil, resp, err
	}
	return currencies, resp, nil
}

func (this *Market) GetCurrency(currency string) (*Currency, []byte, error) {
	var result = new(Currency)
	resp, err := this.DoRequest(http.MethodGet, "/public/currency/"+currency, nil, result)
	if err != nil {
		return nil, resp, err
	}
	return result, resp, nil
}

// GetCurrencyInfo reads the symbol endpoint, same payload as GetSymbol. The
// upstream SDK shipped it that way and callers depend on it.
func (this *Market) GetCurrencyInfo(symbol string) (*Symbol, []byte, error) {
	return this.GetSymbol(symbol)
}

func (this *Market) GetTickers() ([]*Ticker, []byte, error) {
	var tickers []*Ticker
	resp, err := this.DoRequest(http.MethodGet, "/public/ticker", nil, &tickers)
	if err != nil {
		return nil, resp, err
	}
	return tickers, resp, nil
}

func (this *Market) GetTicker(symbol string) (*Ticker, []byte, error) {
	var ticker = new(Ticker)
	resp, err := this.DoRequest(http.MethodGet, "/public/ticker/"+symbol, nil, ticker)
	if err != nil {
		return nil, resp, err
	}
	return ticker, resp, nil
}

// GetTrades supports sort, by, from, till, limit and offset params.
func (this *Market) GetTrades(symbol string, params url.Values) ([]*PublicTrade, []byte, error) {
	var trades []*PublicTrade
	resp, err := this.DoRequest(http.MethodGet, "/public/trades/"+symbol, params, &trades)
	if err != nil {
		return nil, resp, err
	}
	return trades, resp, nil
}

// GetOrderBook supports the limit param, 0 means the full book.
func (this *Market) GetOrderBook(symbol string, params url.Values) (*OrderBook, []byte, error) {
	var book = new(OrderBook)
	resp, err := this.DoRequest(http.MethodGet, "/public/orderbook/"+symbol, params, book)
	if err != nil {
		return nil, resp, err
	}
	return book, resp, nil
}

// GetCandles supports the period and limit params, see the CANDLE_PERIOD
// consts.
func (this *Market) GetCandles(symbol string, params url.Values) ([]*Candle, []byte, error) {
	var candles []*Candle
	resp, err := this.DoRequest(http.MethodGet, "/public/candles/"+symbol, params, &candles)
	if err != nil {
		return nil, resp, err
	}
	return candles, resp, nil
}
