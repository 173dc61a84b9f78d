package forecast

import (
	"math"
	"testing"
)

func TestUpdate_UnseenKeyReturnsObservation(t *testing.T) {
	f := New(0.3)
	got := f.Update("R1:S0", 12)
	if got != 12 {
		t.Errorf("first update should return the observation exactly, got %v", got)
	}
}

func TestUpdate_SeenKeyIsExactBlend(t *testing.T) {
	f := New(0.3)
	f.Update("R1:S0", 10)
	got := f.Update("R1:S0", 20)
	want := 0.3*20 + 0.7*10
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUpdate_ConstantSeriesConverges(t *testing.T) {
	// Three identical observations keep the smoothed value at the
	// observation: 0.3*20 + 0.7*(0.3*20 + 0.7*20) = 20.
	f := New(0.3)
	var got float64
	for i := 0; i < 3; i++ {
		got = f.Update("R1:S0", 20)
	}
	if math.Abs(got-20) > 1e-12 {
		t.Errorf("expected 20.0 after constant series, got %v", got)
	}
}

func TestGet_Default(t *testing.T) {
	f := New(0.3)
	if got := f.Get("never", 8.0); got != 8.0 {
		t.Errorf("unseen key should return default, got %v", got)
	}
	f.Update("seen", 4)
	if got := f.Get("seen", 8.0); got != 4 {
		t.Errorf("seen key should return smoothed value, got %v", got)
	}
}

func TestMean(t *testing.T) {
	f := New(0.3)
	if got := f.Mean(); got != 0 {
		t.Errorf("mean over empty state should be 0, got %v", got)
	}
	f.Update("a", 10)
	f.Update("b", 20)
	if got := f.Mean(); math.Abs(got-15) > 1e-12 {
		t.Errorf("expected mean 15, got %v", got)
	}
	if f.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", f.Len())
	}
}

func TestNew_AlphaFallback(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
	}{
		{name: "zero", alpha: 0},
		{name: "negative", alpha: -1},
		{name: "above one", alpha: 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.alpha)
			f.Update("k", 10)
			got := f.Update("k", 20)
			want := DefaultAlpha*20 + (1-DefaultAlpha)*10
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("expected fallback alpha blend %v, got %v", want, got)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key("R1", "S0"); got != "R1:S0" {
		t.Errorf(`expected "R1:S0", got %q`, got)
	}
}
