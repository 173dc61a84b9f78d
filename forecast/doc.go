// Package forecast maintains per-(route, stop) demand estimates using
// exponential smoothing. It is a placeholder model: the point is the shared
// state discipline, not forecasting accuracy.
package forecast
