package alert

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/event"
)

// Alert categories of the default chain.
const (
	CategoryMotion = "motion"
	CategoryAlarm  = "alarm"
	CategoryPolice = "police"
)

// Alert is a categorised message travelling down the chain.
type Alert struct {
	// Category selects the handler.
	Category string
	// Message is the free-form payload.
	Message string
}

// Handler handles an alert or passes it on.
type Handler interface {
	// Handle returns true when some link of the chain handled a.
	Handle(a Alert) bool
}

// Link is a handler bound to one category with an optional successor.
type Link struct {
	// category is the only category this link acts on.
	category string
	// label prefixes the reported message.
	label string
	// next receives alerts of other categories; nil ends the chain.
	next Handler
	// reporter receives alert events.
	reporter event.Reporter
}

// NewHandler creates a link for category that forwards mismatches to next.
func NewHandler(category, label string, r event.Reporter, next Handler) *Link {
	return &Link{
		category: category,
		label:    label,
		next:     next,
		reporter: r,
	}
}

// NewMotionHandler creates the motion link.
func NewMotionHandler(r event.Reporter, next Handler) *Link {
	return NewHandler(CategoryMotion, "Motion detected!", r, next)
}

// NewAlarmHandler creates the alarm link.
func NewAlarmHandler(r event.Reporter, next Handler) *Link {
	return NewHandler(CategoryAlarm, "Alarm triggered!", r, next)
}

// NewPoliceHandler creates the police link.
func NewPoliceHandler(r event.Reporter, next Handler) *Link {
	return NewHandler(CategoryPolice, "Police notified!", r, next)
}

// Category returns the category this link acts on.
func (l *Link) Category() string {
	return l.category
}

// Handle implements Handler.
func (l *Link) Handle(a Alert) bool {
	if a.Category == l.category {
		l.reporter.Report(event.KindAlert, l.category, fmt.Sprintf("%s %s", l.label, a.Message))

		return true
	}

	if l.next == nil {
		return false
	}

	return l.next.Handle(a)
}
