package stats

// Fixed classification thresholds, inclusive lower bounds.
const (
	ThresholdIdeal       = 250
	ThresholdDiminishing = 300
	ThresholdHardCap     = 350
)

// Status classifies a stat total against the threshold bands.
type Status string

const (
	// StatusZero marks a stat absent from the totals. The classifier never
	// emits it; presentation layers it on for stats a user has not slotted.
	StatusZero Status = "zero"

	StatusUnder       Status = "under"
	StatusIdeal       Status = "ideal"
	StatusDiminishing Status = "diminishing"
	StatusHardCap     Status = "hard-cap"
)

// Warning is the per-stat classification result. Wasted is non-zero only at
// hard cap.
type Warning struct {
	Total  int    `json:"total"`
	Status Status `json:"status"`
	Wasted int    `json:"wasted"`
}

// Classify maps every present stat total to its threshold warning. Empty
// input yields an empty mapping.
func Classify(totals Totals) map[string]Warning {
	warnings := make(map[string]Warning, len(totals))
	for name, total := range totals {
		warnings[name] = classifyTotal(total)
	}
	return warnings
}

func classifyTotal(total int) Warning {
	switch {
	case total >= ThresholdHardCap:
		return Warning{Total: total, Status: StatusHardCap, Wasted: total - ThresholdHardCap}
	case total >= ThresholdDiminishing:
		return Warning{Total: total, Status: StatusDiminishing}
	case total >= ThresholdIdeal:
		return Warning{Total: total, Status: StatusIdeal}
	default:
		return Warning{Total: total, Status: StatusUnder}
	}
}
