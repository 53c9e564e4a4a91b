package models

import (
	"fmt"
	"strings"
)

// Enum is a fixed set of (internal key, external string) pairs with static
// bidirectional lowercase lookup tables, built once at package init.
type Enum struct {
	name       string
	pairs      []enumPair
	byLowerKey map[string]enumPair
	byLowerVal map[string]enumPair
}

type enumPair struct {
	Key   string
	Value string
}

// NewEnum builds an enum from alternating key, value arguments.
func NewEnum(name string, kv ...string) *Enum {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("enum %s: odd number of key/value arguments", name))
	}
	e := &Enum{
		name:       name,
		byLowerKey: make(map[string]enumPair, len(kv)/2),
		byLowerVal: make(map[string]enumPair, len(kv)/2),
	}
	for i := 0; i < len(kv); i += 2 {
		p := enumPair{Key: kv[i], Value: kv[i+1]}
		e.pairs = append(e.pairs, p)
		e.byLowerKey[strings.ToLower(p.Key)] = p
		e.byLowerVal[strings.ToLower(p.Value)] = p
	}
	return e
}

// FromValue resolves an external string to its canonical external value,
// case-insensitively. Unknown values are a hard error.
func (e *Enum) FromValue(s string) (string, error) {
	if p, ok := e.byLowerVal[strings.ToLower(s)]; ok {
		return p.Value, nil
	}
	// Some payloads carry the internal key form instead of the display value.
	if p, ok := e.byLowerKey[strings.ToLower(s)]; ok {
		return p.Value, nil
	}
	return "", fmt.Errorf("invalid %s: %q", e.name, s)
}

// KeyFor resolves an external string to its internal key, case-insensitively.
func (e *Enum) KeyFor(s string) (string, error) {
	if p, ok := e.byLowerVal[strings.ToLower(s)]; ok {
		return p.Key, nil
	}
	if p, ok := e.byLowerKey[strings.ToLower(s)]; ok {
		return p.Key, nil
	}
	return "", fmt.Errorf("invalid %s: %q", e.name, s)
}

// Values returns the external strings in declaration order.
func (e *Enum) Values() []string {
	vals := make([]string, len(e.pairs))
	for i, p := range e.pairs {
		vals[i] = p.Value
	}
	return vals
}

// BookingStatus is the canonical external value of a booking state.
type BookingStatus string

const (
	BookingCheckedIn              BookingStatus = "Checked In"
	BookingCancelCheckinPending   BookingStatus = "Cancel Checkin Pending"
	BookingCancelCheckinRequested BookingStatus = "Cancel Checkin Requested"
	BookingCancelled              BookingStatus = "Cancelled"
	BookingLateCancelled          BookingStatus = "Late Cancelled"
	BookingBooked                 BookingStatus = "Booked"
	BookingWaitlisted             BookingStatus = "Waitlisted"
	BookingCheckinPending         BookingStatus = "Checkin Pending"
	BookingCheckinRequested       BookingStatus = "Checkin Requested"
	BookingCheckinCancelled       BookingStatus = "Checkin Cancelled"
)

// StudioStatus is the canonical external value of a studio state.
type StudioStatus string

const (
	StudioOther      StudioStatus = "OTHER"
	StudioActive     StudioStatus = "Active"
	StudioInactive   StudioStatus = "Inactive"
	StudioComingSoon StudioStatus = "Coming Soon"
	StudioTempClosed StudioStatus = "Temporarily Closed"
	StudioPermClosed StudioStatus = "Permanently Closed"
)

var (
	// BookingStatuses covers upcoming bookings.
	BookingStatuses = NewEnum("booking status",
		"CheckedIn", string(BookingCheckedIn),
		"CancelCheckinPending", string(BookingCancelCheckinPending),
		"CancelCheckinRequested", string(BookingCancelCheckinRequested),
		"Cancelled", string(BookingCancelled),
		"LateCancelled", string(BookingLateCancelled),
		"Booked", string(BookingBooked),
		"Waitlisted", string(BookingWaitlisted),
		"CheckinPending", string(BookingCheckinPending),
		"CheckinRequested", string(BookingCheckinRequested),
		"CheckinCancelled", string(BookingCheckinCancelled),
	)

	// HistoryClassStatuses covers statuses seen on past classes, a wider
	// set than live bookings.
	HistoryClassStatuses = NewEnum("history class status",
		"CheckedIn", "Checked In",
		"CancelCheckinPending", "Cancel Checkin Pending",
		"CancelCheckinRequested", "Cancel Checkin Requested",
		"LateCancelled", "Late Cancelled",
		"Booked", "Booked",
		"Waitlisted", "Waitlisted",
		"CheckinPending", "Checkin Pending",
		"CheckinRequested", "Checkin Requested",
		"CheckinCancelled", "Checkin Cancelled",
		"Pending", "Pending",
		"Confirmed", "Confirmed",
		"Requested", "Requested",
	)

	// StudioStatuses covers studio lifecycle states.
	StudioStatuses = NewEnum("studio status",
		"Other", string(StudioOther),
		"Active", string(StudioActive),
		"Inactive", string(StudioInactive),
		"ComingSoon", string(StudioComingSoon),
		"TempClosed", string(StudioTempClosed),
		"PermClosed", string(StudioPermClosed),
	)
)

// ParseBookingStatus resolves a user-supplied status string (either the
// key form "CheckedIn" or the display form "Checked In", any case).
func ParseBookingStatus(s string) (BookingStatus, error) {
	v, err := BookingStatuses.FromValue(s)
	if err != nil {
		return "", err
	}
	return BookingStatus(v), nil
}

// EquipmentType identifies the station kinds reported by performance data.
type EquipmentType int

const (
	EquipmentTreadmill   EquipmentType = 2
	EquipmentStrider     EquipmentType = 3
	EquipmentRower       EquipmentType = 4
	EquipmentBike        EquipmentType = 5
	EquipmentWeightFloor EquipmentType = 6
	EquipmentPowerWalker EquipmentType = 7
)
