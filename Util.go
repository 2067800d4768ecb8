package gohitbtc

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

func ValuesToJson(v url.Values) ([]byte, error) {
	parammap := make(map[string]interface{})
	for k, vv := range v {
		if len(vv) == 1 {
			parammap[k] = vv[0]
		} else {
			parammap[k] = vv
		}
	}
	return json.Marshal(parammap)
}

// UUID returns a 32 char id, fit for a clientOrderId.
func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}
