package diag

import "fmt"

// Severity defines the importance of a violation.
type Severity uint8

const (
	// SevWarning is for findings that deploy but behave unexpectedly.
	SevWarning Severity = iota
	// SevError is for findings that break or silently corrupt a deployment.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the form MarshalText produces, so serialized
// results decode back to the same severity.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "WARNING":
		*s = SevWarning
	case "ERROR":
		*s = SevError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}
