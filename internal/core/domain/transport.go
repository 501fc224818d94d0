package domain

import "strings"

// TransportMode is the closed set of transport types a booking can use.
type TransportMode string

const (
	ModeCab    TransportMode = "CAB"
	ModeAuto   TransportMode = "AUTO"
	ModeBus    TransportMode = "BUS"
	ModeMetro  TransportMode = "METRO"
	ModeTrain  TransportMode = "TRAIN"
	ModeFlight TransportMode = "FLIGHT"
	ModeOther  TransportMode = "OTHER"
)

// ParseTransportMode normalizes a free-text transport type into a
// TransportMode. Aliases from the legacy API ("taxi", "rickshaw") are kept.
// Unrecognized values map to ModeOther and ok=false so callers can decide
// whether to reject or fall back to the default fare rate.
func ParseTransportMode(s string) (TransportMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cab", "taxi":
		return ModeCab, true
	case "auto", "rickshaw":
		return ModeAuto, true
	case "bus":
		return ModeBus, true
	case "metro":
		return ModeMetro, true
	case "train":
		return ModeTrain, true
	case "flight":
		return ModeFlight, true
	case "other":
		return ModeOther, true
	default:
		return ModeOther, false
	}
}

// IsValid reports whether m is one of the enumerated transport modes.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeCab, ModeAuto, ModeBus, ModeMetro, ModeTrain, ModeFlight, ModeOther:
		return true
	}
	return false
}
