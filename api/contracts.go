package api

import (
	"context"
	"encoding/json"
	"errors"
)

const opCallContract = "call contract"

// ErrInvalidParameters is returned when contract parameters cannot be sent as JSON.
var ErrInvalidParameters = errors.New("contract parameters are not valid JSON")

// CallContract asks the node to run functionName on the contract at
// contractAddress. parameters is sent verbatim; nil is sent as null.
// The node's JSON body is returned unmodified.
func (c *Client) CallContract(ctx context.Context, contractAddress, functionName string, parameters json.RawMessage) (json.RawMessage, error) {
	if parameters != nil && !json.Valid(parameters) {
		return nil, ErrInvalidParameters
	}

	payload := CallContractRequest{
		ContractAddress: contractAddress,
		FunctionName:    functionName,
		Parameters:      parameters,
	}

	return c.postPassthrough(ctx, opCallContract, c.baseURL+"/contracts/call", payload)
}
