// Package sim contains the periodic simulation processes (bus motion,
// ticket-demand generation, schedule optimization, fleet snapshots) and the
// Engine that runs them as one task group over a shared clock.
//
// Each process sleeps for its fixed interval between iterations; ticks are
// phase-independent. Processes never block on each other except through the
// broker's bounded queues, and none of them terminates on a simulation-level
// condition: malformed state is handled with defensive defaults.
package sim
