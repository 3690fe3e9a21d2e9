package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/alph/api"
)

const testContractAddress = "vobthYg1e9tPKhmF96rpkv3akCj7vhvgPpsP4qwZqDw3"

func TestCallContract_RequestShape(t *testing.T) {
	responseBody := `{"returns":[{"type":"U256","value":"42"}],"gasUsed":20000}`
	server, requests := newTestNode(t, http.StatusOK, responseBody)
	client := api.NewClient(server.URL)

	result, err := client.CallContract(testContext(t), testContractAddress, "getTotal", json.RawMessage(`[{"type":"U256","value":"1"}]`))
	require.NoError(t, err)
	require.Equal(t, responseBody, string(result))

	reqs := requests.all()
	require.Len(t, reqs, 1)
	require.Equal(t, http.MethodPost, reqs[0].method)
	require.Equal(t, "/contracts/call", reqs[0].path)
	require.Equal(t,
		`{"contractAddress":"vobthYg1e9tPKhmF96rpkv3akCj7vhvgPpsP4qwZqDw3","functionName":"getTotal","parameters":[{"type":"U256","value":"1"}]}`,
		reqs[0].body)
}

func TestCallContract_NilParameters(t *testing.T) {
	server, requests := newTestNode(t, http.StatusOK, `{}`)
	client := api.NewClient(server.URL)

	_, err := client.CallContract(testContext(t), testContractAddress, "getTotal", nil)
	require.NoError(t, err)

	reqs := requests.all()
	require.Len(t, reqs, 1)
	require.Contains(t, reqs[0].body, `"parameters":null`)
}

func TestCallContract_InvalidParameters(t *testing.T) {
	server, requests := newTestNode(t, http.StatusOK, `{}`)
	client := api.NewClient(server.URL)

	result, err := client.CallContract(testContext(t), testContractAddress, "getTotal", json.RawMessage(`[1,`))
	require.Nil(t, result)
	require.ErrorIs(t, err, api.ErrInvalidParameters)
	require.Empty(t, requests.all())
}

func TestCallContract_Failures(t *testing.T) {
	tests := []struct {
		desc         string
		status       int
		responseBody string
		expectedKind api.Kind
	}{
		{desc: "unknown contract", status: http.StatusBadRequest, responseBody: `{"detail":"Contract not found"}`, expectedKind: api.KindRejected},
		{desc: "malformed body", status: http.StatusOK, responseBody: `{"returns":`, expectedKind: api.KindParse},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			server, _ := newTestNode(t, test.status, test.responseBody)
			client := api.NewClient(server.URL)

			result, err := client.CallContract(testContext(t), testContractAddress, "getTotal", json.RawMessage(`[]`))
			require.Nil(t, result)
			require.True(t, api.IsKind(err, test.expectedKind), "got %v", err)
		})
	}
}
