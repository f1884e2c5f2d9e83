// Package validate implements the row-filtering and validation pipeline
// for campaign spreadsheets.
//
// The pipeline runs a fixed sequence of checks over an in-memory sheet:
// key-column filtering, blank-cell detection, per-column type conformance,
// and recipient address rules. Stages fail fast (the first non-normal
// stage ends the run) while each stage collects every violation it finds
// before reporting.
package validate

// Status is the outcome of a pipeline stage or of the whole run. The
// numeric values are part of the contract surface: they map directly to
// the process exit code.
type Status int

const (
	StatusNormal      Status = 0
	StatusWarning     Status = 1
	StatusUserError   Status = 2
	StatusSystemError Status = 9
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "NORMAL"
	case StatusWarning:
		return "WARNING"
	case StatusUserError:
		return "USER_ERROR"
	case StatusSystemError:
		return "SYSTEM_ERROR"
	default:
		return "UNKNOWN"
	}
}
