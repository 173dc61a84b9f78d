// Package stream implements the event broker: a single bounded ingestion
// queue fed by the simulation loops, drained by one goroutine that fans each
// event out to every registered subscriber.
//
// Delivery is best-effort per subscriber: the fan-out send never blocks, and
// a full subscriber queue drops that event for that subscriber only. Each
// subscriber therefore observes a subsequence of the global publish order,
// never a reordering.
package stream
