package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

const (
	opBuildTransaction  = "build transaction"
	opSubmitTransaction = "submit transaction"
	opGetTransaction    = "fetch transaction"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// BuildTransaction asks the node to build an unsigned transfer of amount
// atto-ALPH from fromAddress to toAddress. None of the arguments are
// checked locally; the node's rejection is the failure signal. The node's
// JSON body is returned unmodified.
func (c *Client) BuildTransaction(ctx context.Context, fromAddress, toAddress, amount, fee string) (json.RawMessage, error) {
	payload := BuildTransactionRequest{
		FromAddress: fromAddress,
		Destinations: []Destination{
			{Address: toAddress, AttoAlphAmount: amount},
		},
		Fee: fee,
	}

	return c.postPassthrough(ctx, opBuildTransaction, c.baseURL+"/transactions/build", payload)
}

// SubmitTransaction hands a pre-signed transaction to the node. The blob is
// opaque to the client.
func (c *Client) SubmitTransaction(ctx context.Context, signedTransaction string) (json.RawMessage, error) {
	payload := SubmitTransactionRequest{SignedTransaction: signedTransaction}

	return c.postPassthrough(ctx, opSubmitTransaction, c.baseURL+"/transactions", payload)
}

// GetTransaction fetches a transaction by id. The node's JSON body is
// returned unmodified.
func (c *Client) GetTransaction(ctx context.Context, txID string) (json.RawMessage, error) {
	return c.passthrough(ctx, opGetTransaction, http.MethodGet, c.baseURL+"/transactions/"+url.PathEscape(txID), nil)
}

func (c *Client) postPassthrough(ctx context.Context, op, url string, payload interface{}) (json.RawMessage, error) {
	return c.passthrough(ctx, op, http.MethodPost, url, payload)
}

// passthrough returns a 2xx body as-is once it is known to be valid JSON.
func (c *Client) passthrough(ctx context.Context, op, method, url string, payload interface{}) (json.RawMessage, error) {
	body, err := c.doJSON(ctx, op, method, url, payload)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, c.fail(parseError(op, body, errInvalidJSON))
	}

	return json.RawMessage(body), nil
}
