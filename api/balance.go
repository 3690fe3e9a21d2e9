package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const opGetBalance = "get balance"

// GetBalance fetches the balance of address, in atto-ALPH, as the node
// reports it. A string field is returned as-is; a numeric field is
// returned as its literal text.
func (c *Client) GetBalance(ctx context.Context, address string) (string, error) {
	reqURL := fmt.Sprintf("%s/addresses/%s/balance", c.baseURL, url.PathEscape(address))

	body, err := c.doJSON(ctx, opGetBalance, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	balance, err := extractBalance(body)
	if err != nil {
		return "", c.fail(parseError(opGetBalance, body, err))
	}

	return balance, nil
}

func extractBalance(body []byte) (string, error) {
	var result map[string]json.RawMessage
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	raw, exists := result["balance"]
	if !exists || string(raw) == "null" {
		return "", fmt.Errorf("balance: %w", ErrMissingField)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String(), nil
	}

	return "", fmt.Errorf("unexpected balance value: %s", string(raw))
}
