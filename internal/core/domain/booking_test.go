package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusPickedUp, true},
		{StatusPickedUp, StatusInTransit, true},
		{StatusInTransit, StatusDelivered, true},
		// skipping stages is rejected
		{StatusPending, StatusInTransit, false},
		{StatusPending, StatusDelivered, false},
		{StatusPickedUp, StatusDelivered, false},
		// going backwards is rejected
		{StatusDelivered, StatusInTransit, false},
		{StatusInTransit, StatusPickedUp, false},
		// delivered is terminal
		{StatusDelivered, StatusDelivered, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s → %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "picked_up", "in_transit", "delivered"} {
		s, ok := ParseStatus(raw)
		if !ok || string(s) != raw {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, true)", raw, s, ok, raw)
		}
	}
	if _, ok := ParseStatus("cancelled"); ok {
		t.Errorf("ParseStatus accepted unknown status")
	}
}
