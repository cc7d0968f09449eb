package store

import "testing"

func TestStateNeedsLoad(t *testing.T) {
	cases := []struct {
		state State
		want  bool
	}{
		{StateIdle, true},
		{StateError, true},
		{StateLoading, false},
		{StateReady, false},
	}
	for _, tc := range cases {
		if got := tc.state.NeedsLoad(); got != tc.want {
			t.Errorf("NeedsLoad(%s) = %v, want %v", tc.state, got, tc.want)
		}
	}
}
