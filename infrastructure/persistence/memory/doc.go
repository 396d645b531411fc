// Package memory implements the in-memory stores of the data layer: the
// account store, the post store, and the bidirectional follower graph. Data
// lives only for the lifetime of the store instance; there is no persistence
// and no deletion path.
//
// Every store is single-writer and synchronous: operations run to completion
// without blocking and perform no internal locking. Concurrent use requires
// external serialization.
package memory
