package dto

import (
	"fmt"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

// Calendar colors for open and taken slots.
const (
	slotColorOpen  = "#4ade80"
	slotColorTaken = "#f87171"
)

// SlotCreateRequest creates a slot. New slots always start open.
type SlotCreateRequest struct {
	Title     string `json:"title" validate:"required"`
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	CohortID  int    `json:"promoId"`
	ClassTier string `json:"clase" validate:"required,oneof=A B C D"`
}

// SlotEditRequest patches the administrative fields of a slot. Lifecycle
// fields (available, student, flown, flownHours) are not reachable here.
type SlotEditRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Start     *string `json:"start" validate:"omitempty,min=1"`
	End       *string `json:"end" validate:"omitempty,min=1"`
	CohortID  *int    `json:"promoId"`
	ClassTier *string `json:"clase" validate:"omitempty,oneof=A B C D"`
}

// ReserveRequest holds nothing today; the reserving student is taken from
// the session, never from the request body.
type ReserveRequest struct{}

// MarkFlownRequest records the hours actually flown on a reserved slot.
type MarkFlownRequest struct {
	Hours float64 `json:"hours" validate:"gte=0"`
}

// SlotEvent is the calendar projection of a slot: a time-ranged event with
// a decorated title and a state color, ready for any calendar widget.
type SlotEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// NewSlotEvent projects a slot onto its calendar event.
func NewSlotEvent(s models.Slot) SlotEvent {
	title := fmt.Sprintf("%s (%s)", s.Title, s.ClassTier)
	color := slotColorOpen
	if !s.Available {
		title = fmt.Sprintf("%s - %s", title, s.Student)
		color = slotColorTaken
	}
	return SlotEvent{
		ID:    s.ID,
		Title: title,
		Start: s.Start,
		End:   s.End,
		Color: color,
	}
}

// SlotListResponse returns the raw slots together with their calendar
// projection.
type SlotListResponse struct {
	Slots  []models.Slot `json:"slots"`
	Events []SlotEvent   `json:"events"`
}

// NewSlotListResponse builds the list response for a set of slots.
func NewSlotListResponse(slots []models.Slot) SlotListResponse {
	events := make([]SlotEvent, 0, len(slots))
	for _, s := range slots {
		events = append(events, NewSlotEvent(s))
	}
	return SlotListResponse{Slots: slots, Events: events}
}

// FlightLogEntry is one line of the flown-slots report.
type FlightLogEntry struct {
	SlotID    string           `json:"slotId"`
	Student   string           `json:"student"`
	ClassTier models.ClassTier `json:"clase"`
	Hours     float64          `json:"flownHours"`
}
