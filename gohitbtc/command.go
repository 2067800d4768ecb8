package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/deforceHK/gohitbtc/hitbtc"

	. "github.com/deforceHK/gohitbtc"
)

var client *hitbtc.HitBTC

func initClient(proxy string) {
	client = hitbtc.New(
		&APIConfig{
			Endpoint:     hitbtc.ENDPOINT,
			HttpClient:   getHttpClient(proxy),
			ApiKey:       os.Getenv("apiKey"),
			ApiSecretKey: os.Getenv("secretKey"),
		},
	)
}

func getHttpClient(proxyUrl string) *http.Client {
	if proxyUrl == "" {
		return &http.Client{
			Timeout: 15 * time.Second,
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				return url.Parse(proxyUrl)
			},
		},
		Timeout: 15 * time.Second,
	}
}

type Command struct{}

func (c *Command) Init(command string, params []string) {
	initClient(*cliProxy)

	switch command {
	case "ticker":
		c.ticker()
	case "depth":
		c.depth()
	case "trades":
		c.trades()
	case "candles":
		c.candles()
	case "symbols":
		c.symbols()
	}
}

func (c *Command) ticker() {
	_, resp, err := client.Market.GetTicker(*cliSymbol)
	c.print(resp, err)
}

func (c *Command) depth() {
	var params = url.Values{}
	params.Set("limit", strconv.Itoa(*cliLimit))
	_, resp, err := client.Market.GetOrderBook(*cliSymbol, params)
	c.print(resp, err)
}

func (c *Command) trades() {
	var params = url.Values{}
	params.Set("limit", strconv.Itoa(*cliLimit))
	_, resp, err := client.Market.GetTrades(*cliSymbol, params)
	c.print(resp, err)
}

func (c *Command) candles() {
	var params = url.Values{}
	params.Set("period", *cliPeriod)
	params.Set("limit", strconv.Itoa(*cliLimit))
	_, resp, err := client.Market.GetCandles(*cliSymbol, params)
	c.print(resp, err)
}

func (c *Command) symbols() {
	_, resp, err := client.Market.GetSymbols()
	c.print(resp, err)
}

func (c *Command) print(resp []byte, err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(string(resp))
}
