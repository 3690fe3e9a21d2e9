package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

const opGetPrice = "fetch price"

// PriceSymbol is the CoinGecko id of the native token
const PriceSymbol = "alephium"

// GetPrice fetches current price for a cryptocurrency
func (c *Client) GetPrice(ctx context.Context, symbol string) (*PriceData, error) {
	reqURL := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.priceURL, url.QueryEscape(symbol))

	body, err := c.doJSON(ctx, opGetPrice, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var result map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, c.fail(parseError(opGetPrice, body, err))
	}

	if priceData, exists := result[symbol]; exists {
		if usdPrice, exists := priceData["usd"]; exists {
			return &PriceData{
				Symbol: symbol,
				USD:    usdPrice,
			}, nil
		}
	}

	return nil, c.fail(parseError(opGetPrice, body, fmt.Errorf("price for %s: %w", symbol, ErrMissingField)))
}
