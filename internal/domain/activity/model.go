package activity

import "time"

// ActivityType is the kind of activity created from the modal.
type ActivityType string

const (
	TypeCall    ActivityType = "call"
	TypeMeeting ActivityType = "meeting"
	TypeTask    ActivityType = "task"
)

// Status is the lifecycle status of an item.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// List identifies which dashboard list an item is shown in.
type List string

const (
	ListMeetings List = "meetings"
	ListTasks    List = "tasks"
)

// Reasons are the selectable reasons, in display order. The first is the default.
var Reasons = []string{
	"Follow-up / Next Step",
	"Discovery / Qualification",
	"Demo / Walkthrough",
	"Quote / Proposal Review",
	"Re-Engage (stalled / no response)",
}

// Outcomes are the selectable outcomes per type.
var Outcomes = map[ActivityType][]string{
	TypeCall:    {"Connected", "Voicemail", "No answer", "Rescheduled"},
	TypeMeeting: {"Held", "No show", "Rescheduled", "Canceled"},
	TypeTask:    {"Done", "Moved", "Canceled"},
}

// CallWhenChoices and TaskDueChoices back the scheduling chips.
var (
	CallWhenChoices = []string{"Now", "Later Today", "Tomorrow"}
	TaskDueChoices  = []string{"Today", "Tomorrow", "Next Week"}
)

// Item is an activity shown on the dashboard.
type Item struct {
	ID          string       `json:"id"`
	BrowserID   string       `json:"browser_id"`
	Type        ActivityType `json:"type"`
	List        List         `json:"list"`
	Reason      string       `json:"reason"`
	Title       string       `json:"title"`
	When        string       `json:"when,omitempty"`
	Due         string       `json:"due,omitempty"`
	MeetingDate string       `json:"meeting_date,omitempty"`
	Status      Status       `json:"status"`
	Outcome     string       `json:"outcome,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// ParseType maps a raw type, defaulting unknown values to a call.
func ParseType(raw string) ActivityType {
	switch ActivityType(raw) {
	case TypeMeeting:
		return TypeMeeting
	case TypeTask:
		return TypeTask
	default:
		return TypeCall
	}
}

// ModalTitle is the create-modal heading for t.
func ModalTitle(t ActivityType) string {
	switch t {
	case TypeCall:
		return "Schedule Call"
	case TypeMeeting:
		return "Schedule Meeting"
	default:
		return "Create Task"
	}
}

// DraftTitle is the auto-generated title for t and reason.
func DraftTitle(t ActivityType, reason string) string {
	if reason == "" {
		reason = Reasons[0]
	}
	return prefix(t) + " – " + reason
}

func prefix(t ActivityType) string {
	switch t {
	case TypeCall:
		return "Call"
	case TypeMeeting:
		return "Meeting"
	default:
		return "Task"
	}
}

// ListFor returns the dashboard list an item of type t belongs to.
func ListFor(t ActivityType) List {
	if t == TypeMeeting {
		return ListMeetings
	}
	return ListTasks
}

// OutcomesFor returns the outcome choices for t, falling back to call outcomes.
func OutcomesFor(t ActivityType) []string {
	if list, ok := Outcomes[t]; ok {
		return list
	}
	return Outcomes[TypeCall]
}

// ActionLabel is the right-hand button caption for an item.
func (i Item) ActionLabel() string {
	if i.Type == TypeMeeting {
		return "Prep"
	}
	return "Done"
}
