package gohitbtc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Signature carries the digest together with the timestamp it was computed
// over. The verifying side needs both.
type Signature struct {
	Digest    string
	Timestamp string
}

// Sign computes the HMAC message signature of one request:
// base64(HMAC-SHA256(timestamp + METHOD + uri + JSON(body))), keyed by the
// base64-decoded secret. The timestamp is fractional seconds since epoch.
//
// This scheme and basic auth are alternate credentials designs of the same
// API. The REST client uses basic auth, Sign is exported on its own so the
// signature variant stays verifiable.
func Sign(secretKey, httpMethod, uri string, body interface{}) (*Signature, error) {
	var nowTS = strconv.FormatFloat(
		float64(time.Now().UnixNano())/float64(time.Second), 'f', 3, 64,
	)
	return SignAt(secretKey, httpMethod, uri, body, nowTS)
}

// SignAt is Sign with the clock injected.
func SignAt(secretKey, httpMethod, uri string, body interface{}, timestamp string) (*Signature, error) {
	preText := timestamp + strings.ToUpper(httpMethod) + uri
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal sign body")
		}
		preText += string(data)
	}

	// secrets are issued base64 encoded, but a raw key still signs
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		key = []byte(secretKey)
	}

	return &Signature{
		Digest:    GetParamHmacSHA256Base64Sign(key, preText),
		Timestamp: timestamp,
	}, nil
}

func GetParamHmacSHA256Base64Sign(key []byte, preText string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(preText))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
