package core

import "testing"

func TestTickMs(t *testing.T) {
	tests := []struct {
		rate int
		want float64
	}{
		{100, 10},
		{50, 20},
		{0, 1000.0 / 60},
		{-5, 1000.0 / 60},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.TickMs(); got != tt.want {
			t.Errorf("TickMs() with rate %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestRunSummaryTotalCleared(t *testing.T) {
	s := RunSummary{Cleared: map[string]int{"Anger": 6, "Fear": 3}}
	if got := s.TotalCleared(); got != 9 {
		t.Errorf("TotalCleared() = %d, expected 9", got)
	}
	if got := (RunSummary{}).TotalCleared(); got != 0 {
		t.Errorf("empty summary TotalCleared() = %d, expected 0", got)
	}
}
