// Package cluster provides messaging substrates for the distributed
// solver strategy, plus a harness that runs a whole cluster inside one
// process.
//
// What
//
//   - Local: an in-process mesh of buffered channels. One endpoint per
//     rank, wildcard receives, a reusable collective barrier. This is
//     the substrate used by the test suite and by SolveLocal.
//   - Master / Worker: a hub-and-spoke websocket substrate for real
//     multi-process runs. Rank 0 listens; every worker dials in and
//     identifies its rank in a handshake frame. The protocol only ever
//     exchanges master↔worker messages, so the hub topology loses
//     nothing.
//   - SolveLocal: runs solver.Solve on every rank of a fresh Local
//     mesh concurrently and returns the master's result.
//
// Wire framing (websocket)
//
//	Each binary frame is one tag byte followed by the payload. Tags
//	below 10 are reserved for the transport itself (hello, barrier);
//	solver protocol tags pass through untouched.
//
// Both substrates deliver buffered: a Send to a worker that has already
// left its receive loop parks the frame harmlessly, which is what the
// master's final stop broadcast relies on.
package cluster
