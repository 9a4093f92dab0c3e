package scarcity

import "strconv"

type Badge string

const (
	BadgeNormal   Badge = "normal"
	BadgeCritical Badge = "critical"
)

func (b Badge) String() string {
	return string(b)
}

func (b Badge) IsValid() bool {
	switch b {
	case BadgeNormal, BadgeCritical:
		return true
	default:
		return false
	}
}

// Label is the badge copy shown next to the buy button.
func (b Badge) Label(remaining int) string {
	if b == BadgeCritical {
		return "Últimas " + strconv.Itoa(remaining)
	}
	return "Quedan " + strconv.Itoa(remaining)
}
