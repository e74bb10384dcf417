package entity

// CalendarSource is the priority tier a busy event came from.
// Override events win conflicts against primary events.
type CalendarSource string

const (
	SourcePrimary  CalendarSource = "primary"
	SourceOverride CalendarSource = "override"
)

// BusyEvent is one occupied period on one person's calendar. The engine
// only reads these; ownership stays with the calendar collaborator.
type BusyEvent struct {
	OwnerID  string         `json:"owner_id"`
	Source   CalendarSource `json:"source"`
	Interval TimeInterval   `json:"interval"`
	Label    string         `json:"label"`
}
