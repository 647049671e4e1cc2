// Package ws streams page frames to viewer connections.
//
// The package implements:
//   - Client: One viewer connection with a buffered outbound queue
//   - Registry: Concurrency-safe set of live viewer connections
//   - Broadcaster: Per-connection capture-and-send loop at a fixed cadence
//   - Handler: WebSocket upgrade and connection pumps
//   - Service: Wires registry, broadcaster and handler together
//
// Key behaviors:
//   - Registry membership is a loop's sole continuation signal; removal,
//     a capture fault or a send fault ends exactly that one loop
//   - Each connection runs an independent loop, so a slow viewer throttles
//     only itself
//   - New viewers are sent the latest cached frame immediately instead of
//     waiting one capture cycle
package ws
