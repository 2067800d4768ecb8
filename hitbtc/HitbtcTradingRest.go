package hitbtc

import (
	"net/http"
	"net/url"
	"strconv"

	. "github.com/deforceHK/gohitbtc"
)

type Trading struct {
	*HitBTC
}

// GetOpenOrders lists the live orders, symbol narrows the market and may be
// empty.
func (this *Trading) GetOpenOrders(symbol string) ([]*Order, []byte, error) {
	var params = url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	var orders []*Order
	resp, err := this.DoSignRequest(http.MethodGet, "/order", params, nil, &orders)
	if err != nil {
		return nil, resp, err
	}
	return orders, resp, nil
}

// GetOpenOrder reads one live order. params supports wait, the long polling
// timeout in milliseconds.
func (this *Trading) GetOpenOrder(clientOrderId string, params url.Values) (*Order, []byte, error) {
	var order = new(Order)
	resp, err := this.DoSignRequest(http.MethodGet, "/order/"+clientOrderId, params, nil, order)
	if err != nil {
		return nil, resp, err
	}
	return order, resp, nil
}

// PlaceOrder submits a new order. The request goes out verbatim, generate a
// ClientOrderId with UUID() when the caller needs one upfront.
func (this *Trading) PlaceOrder(order *OrderRequest) (*Order, []byte, error) {
	var placed = new(Order)
	resp, err := this.DoSignRequest(http.MethodPost, "/order", nil, order, placed)
	if err != nil {
		return nil, resp, err
	}
	return placed, resp, nil
}

// CreateOrder submits a new order under the given clientOrderId. Unlike
// PlaceOrder the id lives in the path, so a retry with the same id is safe.
func (this *Trading) CreateOrder(clientOrderId string, order *OrderRequest) (*Order, []byte, error) {
	var placed = new(Order)
	resp, err := this.DoSignRequest(http.MethodPut, "/order/"+clientOrderId, nil, order, placed)
	if err != nil {
		return nil, resp, err
	}
	return placed, resp, nil
}

// ReplaceOrder cancels the order and books a new one with the quantity and
// price of replace, atomically on the exchange side.
func (this *Trading) ReplaceOrder(clientOrderId string, replace *ReplaceRequest) (*Order, []byte, error) {
	var order = new(Order)
	resp, err := this.DoSignRequest(http.MethodPatch, "/order/"+clientOrderId, nil, replace, order)
	if err != nil {
		return nil, resp, err
	}
	return order, resp, nil
}

// CancelOrders cancels every live order, or every live order of one symbol.
func (this *Trading) CancelOrders(symbol string) ([]*Order, []byte, error) {
	var body interface{}
	if symbol != "" {
		body = url.Values{"symbol": {symbol}}
	}

	var orders []*Order
	resp, err := this.DoSignRequest(http.MethodDelete, "/order", nil, body, &orders)
	if err != nil {
		return nil, resp, err
	}
	return orders, resp, nil
}

func (this *Trading) CancelOrder(clientOrderId string) (*Order, []byte, error) {
	var order = new(Order)
	resp, err := this.DoSignRequest(http.MethodDelete, "/order/"+clientOrderId, nil, nil, order)
	if err != nil {
		return nil, resp, err
	}
	return order, resp, nil
}

func (this *Trading) GetTradingBalance() ([]*Balance, []byte, error) {
	var balances []*Balance
	resp, err := this.DoSignRequest(http.MethodGet, "/trading/balance", nil, nil, &balances)
	if err != nil {
		return nil, resp, err
	}
	return balances, resp, nil
}

func (this *Trading) GetTradingFee(symbol string) (*TradeFee, []byte, error) {
	var fee = new(TradeFee)
	resp, err := this.DoSignRequest(http.MethodGet, "/trading/fee/"+symbol, nil, nil, fee)
	if err != nil {
		return nil, resp, err
	}
	return fee, resp, nil
}

// GetTradeHistory supports symbol, sort, by, from, till, limit and offset
// params.
func (this *Trading) GetTradeHistory(params url.Values) ([]*Trade, []byte, error) {
	var trades []*Trade
	resp, err := this.DoSignRequest(http.MethodGet, "/history/trades", params, nil, &trades)
	if err != nil {
		return nil, resp, err
	}
	return trades, resp, nil
}

// GetOrderHistory supports symbol, clientOrderId, from, till, limit and
// offset params.
func (this *Trading) GetOrderHistory(params url.Values) ([]*Order, []byte, error) {
	var orders []*Order
	resp, err := this.DoSignRequest(http.MethodGet, "/history/order", params, nil, &orders)
	if err != nil {
		return nil, resp, err
	}
	return orders, resp, nil
}

// GetOrderTrades lists the fills of one order by its exchange id, not the
// clientOrderId.
func (this *Trading) GetOrderTrades(orderId int64) ([]*Trade, []byte, error) {
	var uri = "/history/order/" + strconv.FormatInt(orderId, 10) + "/trades"
	var trades []*Trade
	resp, err := this.DoSignRequest(http.MethodGet, uri, nil, nil, &trades)
	if err != nil {
		return nil, resp, err
	}
	return trades, resp, nil
}
