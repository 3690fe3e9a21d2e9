package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/alph/api"
)

func TestGetBalance(t *testing.T) {
	tests := []struct {
		desc         string
		responseBody string
		expected     string
	}{
		{
			desc:         "string balance",
			responseBody: `{"balance": "500"}`,
			expected:     "500",
		},
		{
			desc:         "full node response",
			responseBody: `{"balance":"1000000000000000000","balanceHint":"1 ALPH","lockedBalance":"0","lockedBalanceHint":"0 ALPH","utxoNum":1}`,
			expected:     "1000000000000000000",
		},
		{
			desc:         "numeric balance keeps its literal text",
			responseBody: `{"balance": 123456789012345678901234567890}`,
			expected:     "123456789012345678901234567890",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			server, requests := newTestNode(t, http.StatusOK, test.responseBody)
			client := api.NewClient(server.URL)

			balance, err := client.GetBalance(testContext(t), testFromAddress)
			require.NoError(t, err)
			require.Equal(t, test.expected, balance)

			reqs := requests.all()
			require.Len(t, reqs, 1)
			require.Equal(t, http.MethodGet, reqs[0].method)
			require.Equal(t, "/addresses/"+testFromAddress+"/balance", reqs[0].path)
			require.Empty(t, reqs[0].body)
		})
	}
}

func TestGetBalance_Absent(t *testing.T) {
	tests := []struct {
		desc         string
		responseBody string
		missingField bool
	}{
		{desc: "empty object", responseBody: `{}`, missingField: true},
		{desc: "null balance", responseBody: `{"balance": null}`, missingField: true},
		{desc: "object balance", responseBody: `{"balance": {"value": "1"}}`},
		{desc: "array body", responseBody: `["500"]`},
		{desc: "not json", responseBody: `balance=500`},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			server, _ := newTestNode(t, http.StatusOK, test.responseBody)
			client := api.NewClient(server.URL)

			balance, err := client.GetBalance(testContext(t), testFromAddress)
			require.Empty(t, balance)
			require.True(t, api.IsKind(err, api.KindParse), "got %v", err)
			if test.missingField {
				require.ErrorIs(t, err, api.ErrMissingField)
			}
		})
	}
}

func TestGetBalance_Rejected(t *testing.T) {
	server, _ := newTestNode(t, http.StatusNotFound, `{"detail":"Address not found"}`)
	client := api.NewClient(server.URL)

	balance, err := client.GetBalance(testContext(t), "unknown")
	require.Empty(t, balance)
	require.True(t, api.IsKind(err, api.KindRejected))
	require.ErrorContains(t, err, "Address not found")
}

func TestGetBalance_EscapesAddress(t *testing.T) {
	server, requests := newTestNode(t, http.StatusOK, `{"balance":"0"}`)
	client := api.NewClient(server.URL)

	_, err := client.GetBalance(testContext(t), "a/b c")
	require.NoError(t, err)
	reqs := requests.all()
	require.Len(t, reqs, 1)
	require.Equal(t, "/addresses/a%2Fb%20c/balance", reqs[0].path)
}
