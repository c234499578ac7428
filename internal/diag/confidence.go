package diag

import "fmt"

// Confidence grades how safe an automatic fix is to apply. Levels are
// assigned by rule-author judgment and carried as an opaque enum; nothing
// derives them from a measurable signal.
type Confidence uint8

const (
	// ConfLow marks fixes that need human review before applying.
	ConfLow Confidence = iota
	// ConfMedium marks fixes that are usually right but rewrite semantics.
	ConfMedium
	// ConfHigh marks fixes that are textually unambiguous.
	ConfHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfLow:
		return "low"
	case ConfMedium:
		return "medium"
	case ConfHigh:
		return "high"
	}
	return "unknown"
}

// ParseConfidence maps a user-supplied string to a Confidence level.
func ParseConfidence(s string) (Confidence, bool) {
	switch s {
	case "low":
		return ConfLow, true
	case "medium":
		return ConfMedium, true
	case "high":
		return ConfHigh, true
	}
	return ConfLow, false
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts the form MarshalText produces, so serialized
// results decode back to the same confidence.
func (c *Confidence) UnmarshalText(text []byte) error {
	conf, ok := ParseConfidence(string(text))
	if !ok {
		return fmt.Errorf("unknown confidence %q", text)
	}
	*c = conf
	return nil
}
