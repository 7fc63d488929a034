package submission

// Status is the owner-facing pipeline state of a quote request.
type Status string

const (
	StatusNew       Status = "new"
	StatusViewed    Status = "viewed"
	StatusContacted Status = "contacted"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusViewed, StatusContacted, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// allowedTransitions encodes the one-way pipeline: new→viewed happens
// automatically on first owner view, everything else is an explicit owner
// action, and nothing is reversible (re-opening is not supported).
var allowedTransitions = map[Status][]Status{
	StatusNew:       {StatusViewed, StatusContacted, StatusAccepted, StatusRejected, StatusCompleted},
	StatusViewed:    {StatusContacted, StatusAccepted, StatusRejected, StatusCompleted},
	StatusContacted: {StatusAccepted, StatusRejected, StatusCompleted},
	StatusAccepted:  {StatusCompleted},
	StatusRejected:  {},
	StatusCompleted: {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
