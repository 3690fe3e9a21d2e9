package api_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/alph/api"
)

func TestGetPrice(t *testing.T) {
	server, requests := newTestNode(t, http.StatusOK, `{"alephium":{"usd":0.2871}}`)
	client := api.NewClient(api.TestnetNodeURL, api.WithPriceURL(server.URL))

	price, err := client.GetPrice(testContext(t), api.PriceSymbol)
	require.NoError(t, err)
	require.Equal(t, api.PriceSymbol, price.Symbol)
	require.True(t, decimal.RequireFromString("0.2871").Equal(price.USD))

	reqs := requests.all()
	require.Len(t, reqs, 1)
	require.Equal(t, "/simple/price", reqs[0].path)
}

func TestGetPrice_UnknownSymbol(t *testing.T) {
	server, _ := newTestNode(t, http.StatusOK, `{}`)
	client := api.NewClient(api.TestnetNodeURL, api.WithPriceURL(server.URL))

	price, err := client.GetPrice(testContext(t), "nothing")
	require.Nil(t, price)
	require.True(t, api.IsKind(err, api.KindParse))
	require.ErrorIs(t, err, api.ErrMissingField)
}

func TestNodeURLForNetwork(t *testing.T) {
	require.Equal(t, api.MainnetNodeURL, api.NodeURLForNetwork(api.NetworkMainnet))
	require.Equal(t, api.TestnetNodeURL, api.NodeURLForNetwork(api.NetworkTestnet))
	require.Equal(t, api.TestnetNodeURL, api.NodeURLForNetwork("devnet"))
}
