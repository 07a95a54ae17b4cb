package booking

// Status is the coordinator pipeline stage of an enquiry.
type Status string

const (
	StatusLead        Status = "LEAD"
	StatusContacted   Status = "CONTACTED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusScheduled   Status = "SCHEDULED"
	StatusInTreatment Status = "IN_TREATMENT"
	StatusDischarged  Status = "DISCHARGED"
	StatusCancelled   Status = "CANCELLED"
)

// transitions is the forward path of the pipeline. CANCELLED is reachable
// from every non-terminal stage and is handled separately in CanTransition.
var transitions = map[Status][]Status{
	StatusLead:        {StatusContacted, StatusConfirmed},
	StatusContacted:   {StatusConfirmed},
	StatusConfirmed:   {StatusScheduled},
	StatusScheduled:   {StatusInTreatment},
	StatusInTreatment: {StatusDischarged},
}

// ValidStatus reports whether s is a known pipeline stage.
func ValidStatus(s Status) bool {
	switch s {
	case StatusLead, StatusContacted, StatusConfirmed, StatusScheduled,
		StatusInTreatment, StatusDischarged, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func Terminal(s Status) bool {
	return s == StatusDischarged || s == StatusCancelled
}

// CanTransition reports whether a booking may move from one stage to
// another. Skipping CONTACTED is allowed for patients who confirm on
// first contact; every other stage must be passed in order.
func CanTransition(from, to Status) bool {
	if !ValidStatus(from) || !ValidStatus(to) || from == to {
		return false
	}
	if to == StatusCancelled {
		return !Terminal(from)
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
