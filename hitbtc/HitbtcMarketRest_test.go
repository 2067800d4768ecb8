package hitbtc

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMarket_GetOrderBook(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"ask": [{"price":"0.046002","size":"0.088"},{"price":"0.046800","size":"0.200"}],
		"bid": [{"price":"0.046001","size":"0.005"}]
	}`)

	var params = url.Values{}
	params.Set("limit", "5")
	book, raw, err := client.Market.GetOrderBook("ETHBTC", params)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	require.Equal(t, http.MethodGet, rec.method)
	require.Equal(t, "/public/orderbook/ETHBTC", rec.path)
	require.Equal(t, "limit=5", rec.query)
	require.False(t, rec.hasAuth)

	require.Len(t, book.Ask, 2)
	require.Len(t, book.Bid, 1)
	require.True(t, book.Ask[0].Price.Equal(decimal.RequireFromString("0.046002")))
	require.True(t, book.Bid[0].Size.Equal(decimal.RequireFromString("0.005")))
}

func TestMarket_GetSymbols(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[{
		"id":"ETHBTC","baseCurrency":"ETH","quoteCurrency":"BTC",
		"quantityIncrement":"0.001","tickSize":"0.000001",
		"takeLiquidityRate":"0.001","provideLiquidityRate":"-0.0001",
		"feeCurrency":"BTC"
	}]`)

	symbols, _, err := client.Market.GetSymbols()
	require.NoError(t, err)
	require.Equal(t, "/public/symbol", rec.path)
	require.Empty(t, rec.query)

	require.Len(t, symbols, 1)
	require.Equal(t, "ETHBTC", symbols[0].Id)
	require.Equal(t, "ETH", symbols[0].BaseCurrency)
	require.True(t, symbols[0].ProvideLiquidityRate.IsNegative())
}

func TestMarket_GetSymbol(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"id":"ETHBTC","baseCurrency":"ETH","quoteCurrency":"BTC",
		"quantityIncrement":"0.001","tickSize":"0.000001",
		"takeLiquidityRate":"0.001","provideLiquidityRate":"-0.0001",
		"feeCurrency":"BTC"
	}`)

	symbol, _, err := client.Market.GetSymbol("ETHBTC")
	require.NoError(t, err)
	require.Equal(t, "/public/symbol/ETHBTC", rec.path)
	require.Equal(t, "ETHBTC", symbol.Id)
}

func TestMarket_GetCurrencyInfo_ReadsSymbolEndpoint(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id":"ETHBTC"}`)

	info, _, err := client.Market.GetCurrencyInfo("ETHBTC")
	require.NoError(t, err)
	require.Equal(t, "/public/symbol/ETHBTC", rec.path)
	require.Equal(t, "ETHBTC", info.Id)
}

func TestMarket_GetCurrency(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"id":"ETH","fullName":"Ethereum","crypto":true,
		"payinEnabled":true,"payinConfirmations":2,
		"payoutEnabled":true,"transferEnabled":true,
		"payoutFee":"0.0042"
	}`)

	currency, _, err := client.Market.GetCurrency("ETH")
	require.NoError(t, err)
	require.Equal(t, "/public/currency/ETH", rec.path)
	require.Equal(t, "Ethereum", currency.FullName)
	require.True(t, currency.Crypto)
	require.Equal(t, 2, currency.PayinConfirmations)
}

func TestMarket_GetTicker(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"symbol":"ETHBTC","ask":"0.046002","bid":"0.046001","last":"0.046001",
		"open":"0.045000","low":"0.044500","high":"0.046100",
		"volume":"1000.1","volumeQuote":"45.6",
		"timestamp":"2017-05-12T14:57:19.999Z"
	}`)

	ticker, _, err := client.Market.GetTicker("ETHBTC")
	require.NoError(t, err)
	require.Equal(t, "/public/ticker/ETHBTC", rec.path)
	require.NotNil(t, ticker.Ask)
	require.True(t, ticker.Ask.Equal(decimal.RequireFromString("0.046002")))
	require.Equal(t, 2017, ticker.Timestamp.Year())
}

func TestMarket_GetTicker_NullPrices(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{
		"symbol":"DEADBTC","ask":null,"bid":null,"last":null,"open":null,
		"low":"0","high":"0","volume":"0","volumeQuote":"0",
		"timestamp":"2017-05-12T14:57:19.999Z"
	}`)

	ticker, _, err := client.Market.GetTicker("DEADBTC")
	require.NoError(t, err)
	require.Nil(t, ticker.Ask)
	require.Nil(t, ticker.Last)
}

func TestMarket_GetTrades(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[
		{"id":9533117,"price":"0.046001","quantity":"0.220","side":"sell","timestamp":"2017-05-12T14:57:19.999Z"},
		{"id":9533116,"price":"0.046002","quantity":"0.022","side":"buy","timestamp":"2017-05-12T14:57:19.100Z"}
	]`)

	var params = url.Values{}
	params.Set("sort", "DESC")
	params.Set("limit", "2")
	trades, _, err := client.Market.GetTrades("ETHBTC", params)
	require.NoError(t, err)

	require.Equal(t, "/public/trades/ETHBTC", rec.path)
	require.Equal(t, "limit=2&sort=DESC", rec.query)
	require.Len(t, trades, 2)
	require.Equal(t, int64(9533117), trades[0].Id)
	require.Equal(t, "sell", trades[0].Side)
}

func TestMarket_GetCandles(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[{
		"timestamp":"2017-10-20T20:00:00.000Z",
		"open":"0.046120","close":"0.046125","min":"0.046102","max":"0.046150",
		"volume":"32.13","volumeQuote":"1.48"
	}]`)

	var params = url.Values{}
	params.Set("period", "M30")
	params.Set("limit", "10")
	candles, _, err := client.Market.GetCandles("ETHBTC", params)
	require.NoError(t, err)

	require.Equal(t, "/public/candles/ETHBTC", rec.path)
	require.Equal(t, "limit=10&period=M30", rec.query)
	require.Len(t, candles, 1)
	require.True(t, candles[0].Max.Equal(decimal.RequireFromString("0.046150")))
}

func TestMarket_GetTickers(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[
		{"symbol":"ETHBTC","volume":"1","volumeQuote":"1","timestamp":"2017-05-12T14:57:19.999Z"},
		{"symbol":"BTCUSD","volume":"2","volumeQuote":"2","timestamp":"2017-05-12T14:57:19.999Z"}
	]`)

	tickers, _, err := client.Market.GetTickers()
	require.NoError(t, err)
	require.Equal(t, "/public/ticker", rec.path)
	require.Len(t, tickers, 2)
}
