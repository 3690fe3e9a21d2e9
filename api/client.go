package api

// API Client-
//
// Files:
//   config.go       - node endpoints and network constants
//   types.go        - request/response shapes (build, submit, contract call, price)
//   errors.go       - typed failures (transport, timeout, rejected, parse)
//   base.go         - core client functionality (client struct, options, request helper)
//   transactions.go - build, submit and fetch transactions
//   contracts.go    - contract function calls
//   balance.go      - address balance lookup
//   price.go        - fiat price lookup
//
// Usage:
//   client := api.NewClient(api.TestnetNodeURL)                          // from base.go
//   unsigned, err := client.BuildTransaction(ctx, from, to, amount, fee) // from transactions.go
//   balance, err := client.GetBalance(ctx, address)                      // from balance.go
//   if api.IsKind(err, api.KindRejected) { ... }                         // from errors.go
