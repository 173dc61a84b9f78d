package forecast

import "sync"

// DefaultAlpha is the smoothing factor used when none is configured.
const DefaultAlpha = 0.3

// Key builds the canonical "route:stop" forecast key.
func Key(routeID, stopID string) string {
	return routeID + ":" + stopID
}

// Forecaster holds one exponentially weighted moving average per key.
// The key set grows monotonically as new (route, stop) pairs are observed.
// Safe for concurrent use.
type Forecaster struct {
	mu     sync.RWMutex
	alpha  float64
	values map[string]float64
}

// New returns a Forecaster with the given smoothing factor; alpha outside
// (0, 1] falls back to DefaultAlpha.
func New(alpha float64) *Forecaster {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	return &Forecaster{alpha: alpha, values: map[string]float64{}}
}

// Update folds one observation into the key's smoothed value and returns the
// new value. The first observation for a key seeds the previous value with
// the observation itself, so Update on an unseen key returns v exactly.
func (f *Forecaster) Update(key string, v float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, ok := f.values[key]
	if !ok {
		prev = v
	}
	next := f.alpha*v + (1-f.alpha)*prev
	f.values[key] = next
	return next
}

// Get returns the smoothed value for key, or def when the key has never
// been observed. Unseen keys are not an error.
func (f *Forecaster) Get(key string, def float64) float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if v, ok := f.values[key]; ok {
		return v
	}
	return def
}

// Mean returns the average smoothed value across all observed keys, or 0
// when nothing has been observed yet.
func (f *Forecaster) Mean() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range f.values {
		sum += v
	}
	return sum / float64(len(f.values))
}

// Len returns the number of observed keys.
func (f *Forecaster) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.values)
}
