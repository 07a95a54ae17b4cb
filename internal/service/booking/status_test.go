package booking

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"lead to contacted", StatusLead, StatusContacted, true},
		{"lead skips to confirmed", StatusLead, StatusConfirmed, true},
		{"contacted to confirmed", StatusContacted, StatusConfirmed, true},
		{"confirmed to scheduled", StatusConfirmed, StatusScheduled, true},
		{"scheduled to in treatment", StatusScheduled, StatusInTreatment, true},
		{"in treatment to discharged", StatusInTreatment, StatusDischarged, true},

		{"lead cannot skip to scheduled", StatusLead, StatusScheduled, false},
		{"contacted cannot skip to in treatment", StatusContacted, StatusInTreatment, false},
		{"no backwards move", StatusConfirmed, StatusLead, false},
		{"no self transition", StatusLead, StatusLead, false},

		{"cancel from lead", StatusLead, StatusCancelled, true},
		{"cancel from contacted", StatusContacted, StatusCancelled, true},
		{"cancel from scheduled", StatusScheduled, StatusCancelled, true},
		{"cancel from in treatment", StatusInTreatment, StatusCancelled, true},
		{"no cancel after discharge", StatusDischarged, StatusCancelled, false},
		{"no double cancel", StatusCancelled, StatusCancelled, false},

		{"discharged is terminal", StatusDischarged, StatusContacted, false},
		{"cancelled is terminal", StatusCancelled, StatusLead, false},

		{"unknown from", Status("PENDING"), StatusContacted, false},
		{"unknown to", StatusLead, Status("DONE"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []Status{StatusLead, StatusContacted, StatusConfirmed, StatusScheduled, StatusInTreatment} {
		if Terminal(s) {
			t.Errorf("Terminal(%s) = true, want false", s)
		}
	}
	for _, s := range []Status{StatusDischarged, StatusCancelled} {
		if !Terminal(s) {
			t.Errorf("Terminal(%s) = false, want true", s)
		}
	}
}

func TestEveryStageCanReachATerminal(t *testing.T) {
	// Walk forward from every non-terminal stage; the pipeline must
	// never strand a booking.
	for from := range transitions {
		seen := map[Status]bool{from: true}
		frontier := []Status{from}
		reached := false
		for len(frontier) > 0 {
			cur := frontier[0]
			frontier = frontier[1:]
			if Terminal(cur) {
				reached = true
				break
			}
			for _, next := range transitions[cur] {
				if !seen[next] {
					seen[next] = true
					frontier = append(frontier, next)
				}
			}
			if CanTransition(cur, StatusCancelled) {
				reached = true
				break
			}
		}
		if !reached {
			t.Errorf("no terminal stage reachable from %s", from)
		}
	}
}
