package bizcal

import "strings"

// ObservanceMode selects how an occurrence that lands on a holiday or
// weekend is relocated to the nearest business day.
type ObservanceMode string

const (
	ObservanceNone           ObservanceMode = ""
	ObservanceNextBizDay     ObservanceMode = "next-business-day"
	ObservancePreviousBizDay ObservanceMode = "previous-business-day"
)

// IsEmpty reports whether the mode is unset.
func (om ObservanceMode) IsEmpty() bool {
	return strings.TrimSpace(string(om)) == ""
}

func (om ObservanceMode) String() string {
	return string(om)
}
