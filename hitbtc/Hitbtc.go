package hitbtc

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	. "github.com/deforceHK/gohitbtc"
)

const (
	ENDPOINT = "https://api.hitbtc.com/api/2"

	ACCEPT        = "Accept"
	CONTENT_TYPE  = "Content-Type"
	AUTHORIZATION = "Authorization"

	APPLICATION_JSON = "application/json"
)

type HitBTC struct {
	// copied by value in New, a live client never sees a credential swap
	config APIConfig

	Market  *Market
	Trading *Trading
	Account *Account
}

func New(config *APIConfig) *HitBTC {
	var h = &HitBTC{config: *config}
	if h.config.Endpoint == "" {
		h.config.Endpoint = ENDPOINT
	}
	if h.config.HttpClient == nil {
		h.config.HttpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if h.config.Logger == nil {
		h.config.Logger = zap.NewNop().Sugar()
	}
	h.Market = &Market{h}
	h.Trading = &Trading{h}
	h.Account = &Account{h}
	return h
}

func (h *HitBTC) GetExchangeName() string {
	return HITBTC
}

// IsUpgraded reports whether the client carries credentials for the private
// endpoints.
func (h *HitBTC) IsUpgraded() bool {
	return h.config.ApiKey != "" && h.config.ApiSecretKey != ""
}

// Upgrade returns a new client with the given key pair. The receiver stays
// anonymous, so requests in flight never race a credential change.
func (h *HitBTC) Upgrade(apiKey, secretKey string) *HitBTC {
	var config = h.config
	config.ApiKey = apiKey
	config.ApiSecretKey = secretKey
	return New(&config)
}

// DoRequest hits a public endpoint. params are querystring encoded.
func (h *HitBTC) DoRequest(httpMethod, uri string, params url.Values, response interface{}) ([]byte, error) {
	var reqUrl = h.config.Endpoint + uri
	if len(params) != 0 {
		reqUrl += "?" + params.Encode()
	}
	h.config.Logger.Debugw("do request", "method", httpMethod, "url", reqUrl)

	status, resp, err := NewHttpRequest(
		h.config.HttpClient,
		httpMethod, reqUrl, "",
		map[string]string{
			CONTENT_TYPE: APPLICATION_JSON,
			ACCEPT:       APPLICATION_JSON,
		},
	)

	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return resp, UnwrapError(status, resp)
	}
	if response == nil {
		return resp, nil
	}
	if err := json.Unmarshal(resp, response); err != nil {
		return resp, errors.Wrap(err, "unmarshal response")
	}
	return resp, nil
}

// DoSignRequest hits a private endpoint with basic auth. params are
// querystring encoded, body is json encoded, a url.Values body is flattened
// first. Without credentials it fails before touching the network.
func (h *HitBTC) DoSignRequest(
	httpMethod,
	uri string,
	params url.Values,
	body interface{},
	response interface{},
) ([]byte, error) {
	if !h.IsUpgraded() {
		return nil, ErrApiKeysRequired
	}

	var reqUrl = h.config.Endpoint + uri
	if len(params) != 0 {
		reqUrl += "?" + params.Encode()
	}

	var reqBody string
	if body != nil {
		var data []byte
		var err error
		if values, ok := body.(url.Values); ok {
			data, err = ValuesToJson(values)
		} else {
			data, err = json.Marshal(body)
		}
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		reqBody = string(data)
	}

	var auth = base64.StdEncoding.EncodeToString(
		[]byte(h.config.ApiKey + ":" + h.config.ApiSecretKey),
	)
	h.config.Logger.Debugw("do sign request", "method", httpMethod, "url", reqUrl)

	status, resp, err := NewHttpRequest(
		h.config.HttpClient,
		httpMethod, reqUrl, reqBody,
		map[string]string{
			CONTENT_TYPE:  APPLICATION_JSON,
			ACCEPT:        APPLICATION_JSON,
			AUTHORIZATION: "Basic " + auth,
		},
	)

	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return resp, UnwrapError(status, resp)
	}
	if response == nil {
		return resp, nil
	}
	if err := json.Unmarshal(resp, response); err != nil {
		return resp, errors.Wrap(err, "unmarshal response")
	}
	return resp, nil
}
