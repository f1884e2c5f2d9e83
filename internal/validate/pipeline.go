package validate

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/mailsheet/internal/sheet"
)

// State is the orchestrator's position in the stage sequence.
type State string

const (
	StateNotStarted    State = "not_started"
	StateFiltering     State = "filtering"
	StateCheckingEmpty State = "checking_empty"
	StateCheckingTypes State = "checking_types"
	StateCheckingEmail State = "checking_email"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// Result is the outcome of one pipeline run.
type Result struct {
	RunID      string      `json:"runId"`
	Status     Status      `json:"status"`
	State      State       `json:"state"`
	Violations []Violation `json:"violations,omitempty"`
	// Err carries the infrastructure failure message when Status is
	// SYSTEM_ERROR. Business-rule violations never populate it.
	Err string `json:"error,omitempty"`

	// Filtered is the row set that survived the key-column filter. It is
	// available whenever the filtering stage completed, so a caller can
	// persist it even when a later stage failed.
	Filtered *sheet.Sheet `json:"-"`
}

// Pipeline runs the validation stages in a fixed order: filter, presence,
// types, email policy. The first stage returning a non-normal status ends
// the run (fail-fast across stages); within a stage every violation is
// collected (collect-all within a stage).
//
// A Pipeline carries only configuration; each Run builds fresh state, so
// runs are independent and the same Pipeline may be reused per sheet.
type Pipeline struct {
	KeyColumn     string
	MaxRecipients int
	Rules         map[string]ColumnRule
	Exempt        map[string]bool
	Skip          map[string]bool
	Recipients    []string
	Logger        *slog.Logger
}

// New builds a pipeline with the default business rules for the given key
// column and per-cell recipient limit.
func New(keyColumn string, maxRecipients int) *Pipeline {
	if keyColumn == "" {
		keyColumn = DefaultKeyColumn
	}
	if maxRecipients <= 0 {
		maxRecipients = DefaultMaxRecipients
	}
	return &Pipeline{
		KeyColumn:     keyColumn,
		MaxRecipients: maxRecipients,
		Rules:         DefaultColumnRules(keyColumn),
		Exempt:        DefaultExemptColumns(),
		Skip:          DefaultSkipColumns(),
		Recipients:    DefaultRecipientColumns(),
	}
}

// Run executes the pipeline over one sheet.
//
// Unexpected failures inside any stage are recovered at this boundary and
// reported as SYSTEM_ERROR; business-rule violations are USER_ERROR and
// never raised as errors.
func (p *Pipeline) Run(s *sheet.Sheet) (res Result) {
	res = Result{RunID: uuid.NewString(), State: StateNotStarted}

	log := p.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("run_id", res.RunID)

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Sprintf("unexpected failure during %s: %v", res.State, r)
			log.Error("pipeline aborted", "state", res.State, "panic", r)
			res.Status = StatusSystemError
			res.State = StateFailed
		}
	}()

	res.State = StateFiltering
	filtered, st, violations := FilterByKey(s, p.KeyColumn)
	res.Filtered = filtered
	if st != StatusNormal {
		return p.fail(log, res, st, violations)
	}
	log.Info("rows filtered", "key_column", p.KeyColumn,
		"in", len(s.Rows), "out", len(filtered.Rows))

	res.State = StateCheckingEmpty
	st, violations = CheckPresence(filtered, p.Exempt, p.Skip)
	if st != StatusNormal {
		return p.fail(log, res, st, violations)
	}

	res.State = StateCheckingTypes
	st, violations = CheckTypes(filtered, p.Rules)
	if st != StatusNormal {
		return p.fail(log, res, st, violations)
	}

	res.State = StateCheckingEmail
	policy := EmailPolicy{
		KeyColumn:  p.KeyColumn,
		Recipients: p.Recipients,
		MaxPerCell: p.MaxRecipients,
	}
	st, violations = policy.Check(filtered)
	if st != StatusNormal {
		return p.fail(log, res, st, violations)
	}

	res.State = StateDone
	res.Status = StatusNormal
	log.Info("validation passed", "rows", len(filtered.Rows))
	return res
}

// fail records the first non-normal stage outcome. Later stages do not
// run and contribute no violations.
func (p *Pipeline) fail(log *slog.Logger, res Result, st Status, violations []Violation) Result {
	log.Warn("stage failed", "state", res.State,
		"status", st.String(), "violations", len(violations))
	res.Status = st
	res.State = StateFailed
	res.Violations = violations
	return res
}
