// Package transit holds the network data model (stops, routes, buses,
// schedule) and the in-memory store shared by the simulation loops.
//
// Ownership is single-writer-per-field: the motion simulator is the only
// writer of bus position/ETA fields, the schedule optimizer is the only
// writer of ScheduleEntry.OptimizedTime. Readers tolerate transient
// staleness; no operation spans more than one bus or one schedule entry.
package transit
