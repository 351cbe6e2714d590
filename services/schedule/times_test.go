package schedule

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "10:00", want: 600},
		{in: "23:59", want: 1439},
		{in: "9:30", want: 570},
		{in: "14:30:00", want: 870},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "12:30:xx", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
				continue
			}
			var ite *InvalidTimeFormatError
			if !errors.As(err, &ite) {
				t.Errorf("ParseClock(%q): expected InvalidTimeFormatError, got %T", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseInterval_AllowsReversedEndpoints(t *testing.T) {
	// End <= start passes through untouched; cross-midnight handling is the
	// caller's call via the explicit flag.
	iv, err := ParseInterval("18:00", "09:00", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Start != 1080 || iv.End != 540 {
		t.Fatalf("got interval %+v", iv)
	}
}

func TestIntervalContains_HalfOpen(t *testing.T) {
	iv := Interval{Start: 600, End: 660}
	if !iv.Contains(600) {
		t.Errorf("start boundary must be inside")
	}
	if iv.Contains(660) {
		t.Errorf("end boundary must be outside")
	}
	if iv.Contains(599) || iv.Contains(661) {
		t.Errorf("out-of-range minutes must be outside")
	}
}

func TestIntervalContains_CrossMidnight(t *testing.T) {
	iv := Interval{Start: 1320, End: 120, CrossesMidnight: true} // 22:00-02:00
	for _, in := range []int{1320, 1439, 0, 119} {
		if !iv.Contains(in) {
			t.Errorf("expected %d inside overnight interval", in)
		}
	}
	for _, out := range []int{120, 600, 1319} {
		if iv.Contains(out) {
			t.Errorf("expected %d outside overnight interval", out)
		}
	}
	if got := iv.Duration(); got != 240 {
		t.Errorf("Duration() = %d, want 240", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{0: "00:00", 600: "10:00", 1439: "23:59", 1500: "01:00"}
	for in, want := range cases {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}
