package main

import (
	"flag"
)

var cliSymbol = flag.String("symbol", "ETHBTC", "Input the symbol id. ")
var cliLimit = flag.Int("limit", 5, "Input the order book limit. ")
var cliPeriod = flag.String("period", "M30", "Input the candle period. ")
var cliProxy = flag.String("proxy", "", "Input the proxy url. ")

var sCommand = map[string]string{
	"ticker":  "exchange ticker api",
	"depth":   "exchange order book api",
	"trades":  "exchange trades api",
	"candles": "exchange candle api",
	"symbols": "the exchange symbol rules. ",
}

func main() {
	flag.Parse()
	paramCount := flag.NArg()
	firstParam := ""
	if paramCount != 0 {
		firstParam = flag.Arg(0)
	}

	_, exist := sCommand[firstParam]
	if paramCount == 0 || !exist {
		flag.PrintDefaults()
	} else {
		c := &Command{}
		c.Init(firstParam, flag.Args()[1:])
	}
}
