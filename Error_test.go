package gohitbtc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapError_ExchangeErrorObject(t *testing.T) {
	var body = []byte(`{"error":{"code":20001,"message":"Insufficient funds","description":"Check the balance."}}`)

	err := UnwrapError(400, body)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, 20001, apiErr.Code())
	require.Equal(t, "Insufficient funds", apiErr.Message)
	require.Equal(t, "Insufficient funds: Check the balance.", err.Error())
}

func TestUnwrapError_MessageOnly(t *testing.T) {
	var body = []byte(`{"error":{"code":2001,"message":"X"}}`)

	err := UnwrapError(400, body)
	require.Equal(t, "X", err.Error())
}

func TestUnwrapError_RawBodyFallback(t *testing.T) {
	err := UnwrapError(502, []byte("upstream connect error"))
	require.Equal(t, "upstream connect error", err.Error())

	coded, ok := err.(Error)
	require.True(t, ok)
	require.Equal(t, 502, coded.Code())
}

func TestUnwrapError_StatusFallback(t *testing.T) {
	err := UnwrapError(500, nil)
	require.Equal(t, "HttpStatusCode:500", err.Error())

	err = UnwrapError(504, []byte("  \n"))
	require.Equal(t, "HttpStatusCode:504", err.Error())
}

func TestUnwrapError_NonErrorJsonFallsThrough(t *testing.T) {
	// a json body without the error envelope surfaces as raw text
	err := UnwrapError(403, []byte(`{"status":"denied"}`))
	require.Equal(t, `{"status":"denied"}`, err.Error())
}

func TestNewError(t *testing.T) {
	err := NewError(42, "no %s here", "order")
	require.Equal(t, "no order here", err.Error())
	require.Equal(t, 42, err.Code())

	plain := NewError(7, "plain message")
	require.Equal(t, "plain message", plain.Error())
}
