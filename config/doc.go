// Package config loads and validates the application configuration from
// config.yml. Every knob has a built-in default, so the simulator runs with
// no configuration file at all.
package config
