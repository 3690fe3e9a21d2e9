package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Destination is a single output of a transaction
type Destination struct {
	Address        string `json:"address"`
	AttoAlphAmount string `json:"attoAlphAmount"`
}

// BuildTransactionRequest is the body of POST /transactions/build.
// Amounts are integer strings in atto-ALPH and are not checked locally.
type BuildTransactionRequest struct {
	FromAddress  string        `json:"fromAddress"`
	Destinations []Destination `json:"destinations"`
	Fee          string        `json:"fee"`
}

// SubmitTransactionRequest is the body of POST /transactions
type SubmitTransactionRequest struct {
	SignedTransaction string `json:"signedTransaction"`
}

// CallContractRequest is the body of POST /contracts/call
type CallContractRequest struct {
	ContractAddress string          `json:"contractAddress"`
	FunctionName    string          `json:"functionName"`
	Parameters      json.RawMessage `json:"parameters"`
}

// PriceData represents cryptocurrency price information
type PriceData struct {
	Symbol string          `json:"symbol"`
	USD    decimal.Decimal `json:"usd"`
}

// nodeErrorResponse is the error body the node returns with non-2xx statuses
type nodeErrorResponse struct {
	Detail string `json:"detail"`
}
