package gohitbtc

// exchanges const
const (
	HITBTC = "hitbtc"
)

// order sides
const (
	BUY  = "buy"
	SELL = "sell"
)

// order types
const (
	ORDER_TYPE_LIMIT       = "limit"
	ORDER_TYPE_MARKET      = "market"
	ORDER_TYPE_STOP_LIMIT  = "stopLimit"
	ORDER_TYPE_STOP_MARKET = "stopMarket"
)

// time in force
const (
	TIF_GTC = "GTC"
	TIF_IOC = "IOC"
	TIF_FOK = "FOK"
	TIF_DAY = "Day"
	TIF_GTD = "GTD"
)

// order status
const (
	ORDER_NEW              = "new"
	ORDER_SUSPENDED        = "suspended"
	ORDER_PARTIALLY_FILLED = "partiallyFilled"
	ORDER_FILLED           = "filled"
	ORDER_CANCELED         = "canceled"
	ORDER_EXPIRED          = "expired"
)

// candle periods
const (
	CANDLE_PERIOD_1MIN   = "M1"
	CANDLE_PERIOD_3MIN   = "M3"
	CANDLE_PERIOD_5MIN   = "M5"
	CANDLE_PERIOD_15MIN  = "M15"
	CANDLE_PERIOD_30MIN  = "M30"
	CANDLE_PERIOD_1H     = "H1"
	CANDLE_PERIOD_4H     = "H4"
	CANDLE_PERIOD_1DAY   = "D1"
	CANDLE_PERIOD_1WEEK  = "D7"
	CANDLE_PERIOD_1MONTH = "1M"
)

// sort direction and field of the history apis
const (
	SORT_ASC  = "ASC"
	SORT_DESC = "DESC"

	SORT_BY_TIMESTAMP = "timestamp"
	SORT_BY_ID        = "id"
)

// transaction types
const (
	TRANSACTION_PAYIN            = "payin"
	TRANSACTION_PAYOUT           = "payout"
	TRANSACTION_DEPOSIT          = "deposit"
	TRANSACTION_WITHDRAW         = "withdraw"
	TRANSACTION_BANK_TO_EXCHANGE = "bankToExchange"
	TRANSACTION_EXCHANGE_TO_BANK = "exchangeToBank"
)

// transfer directions of account/transfer
const (
	TRANSFER_BANK_TO_EXCHANGE = "bankToExchange"
	TRANSFER_EXCHANGE_TO_BANK = "exchangeToBank"
)
