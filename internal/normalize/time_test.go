package normalize

import (
	"testing"
	"time"
)

func TestResolveTime_PreformattedString(t *testing.T) {
	tests := []struct {
		name string
		dt   string
		want string
	}{
		{"exact width", "2023-11-14 22:13:20", "2023-11-14 22:13:20"},
		{"truncated", "2023-11-14 22:13:20.123456", "2023-11-14 22:13:20"},
		{"shorter passes through", "2023-11-14", "2023-11-14"},
	}
	for _, tt := range tests {
		got, src := ResolveTime(map[string]any{"dt": tt.dt, "t": 1700000000})
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
		if src != TimeFromString {
			t.Errorf("%s: expected string source, got %v", tt.name, src)
		}
	}
}

func TestResolveTime_SecondsVsMilliseconds(t *testing.T) {
	secs, src1 := ResolveTime(map[string]any{"t": float64(1_700_000_000)})
	ms, src2 := ResolveTime(map[string]any{"t": float64(1_700_000_000_000)})

	want := time.Unix(1_700_000_000, 0).Format("2006-01-02 15:04:05")
	if secs != want {
		t.Errorf("seconds: expected %q, got %q", want, secs)
	}
	if ms != secs {
		t.Errorf("milliseconds should land on the same wall clock: %q vs %q", ms, secs)
	}
	if src1 != TimeFromEpoch || src2 != TimeFromEpoch {
		t.Errorf("expected epoch sources, got %v and %v", src1, src2)
	}
}

func TestResolveTime_SynonymPriority(t *testing.T) {
	got, _ := ResolveTime(map[string]any{
		"t":         float64(1_700_000_000),
		"timestamp": float64(1_600_000_000),
		"time":      float64(1_500_000_000),
	})
	want := time.Unix(1_700_000_000, 0).Format("2006-01-02 15:04:05")
	if got != want {
		t.Errorf("expected t to win over timestamp/time, got %q", got)
	}
}

func TestResolveTime_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		rec     map[string]any
		want    string
		wantSrc TimeSource
	}{
		{"no field", map[string]any{"p": 1.0}, "N/A", TimeMissing},
		{"zero epoch", map[string]any{"t": float64(0)}, "N/A", TimeMissing},
		{"non-numeric", map[string]any{"t": "garbage"}, "garbage", TimeRaw},
		{"unrepresentable epoch", map[string]any{"t": 1e20}, "100000000000000000000", TimeRaw},
		{"negative epoch", map[string]any{"t": float64(-5)}, "-5", TimeRaw},
		{"empty dt falls through", map[string]any{"dt": "", "t": "junk"}, "junk", TimeRaw},
	}
	for _, tt := range tests {
		got, src := ResolveTime(tt.rec)
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
		if src != tt.wantSrc {
			t.Errorf("%s: expected source %v, got %v", tt.name, tt.wantSrc, src)
		}
	}
}
