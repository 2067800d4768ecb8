package gohitbtc

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// NewHttpRequest issues a single request and hands back the status code with
// the raw body. The caller decides how a non-2xx body becomes an error, see
// UnwrapError.
func NewHttpRequest(
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requestHeaders map[string]string,
) (int, []byte, error) {
	req, err := http.NewRequest(reqType, reqUrl, strings.NewReader(postData))
	if err != nil {
		return 0, nil, errors.Wrap(err, "build request")
	}
	if requestHeaders != nil {
		for k, v := range requestHeaders {
			req.Header.Set(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "do request")
	}

	defer resp.Body.Close()

	bodyData, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "read response body")
	}

	return resp.StatusCode, bodyData, nil
}
