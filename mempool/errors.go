package mempool

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// InputError is a malformed request, usually an invalid txid.
	InputError ErrorKind = iota + 1
	// NotFoundError means the txid is absent from the source the operation needs.
	NotFoundError
	// BackendError is a failed pool backend call on a write path.
	BackendError
	// StateConflict is a staging transition that is not allowed from the current stage.
	StateConflict
)

func (k ErrorKind) String() string {
	switch k {
	case InputError:
		return "invalid_input"
	case NotFoundError:
		return "not_found"
	case BackendError:
		return "backend_error"
	case StateConflict:
		return "state_conflict"
	default:
		return "unknown"
	}
}

type DiagnosticKind string

const (
	DiagnosticSubmitRejected DiagnosticKind = "submit_rejected"
	DiagnosticInputsMissing  DiagnosticKind = "inputs_missing"
)

const (
	hintNodesNotSynced = "Nodes not synchronized. Check block heights match."
	causeStateMismatch = "Blockchain state mismatch"
)

// SubmitDiagnostics describes a failed submission to the committed pool.
type SubmitDiagnostics struct {
	Kind            DiagnosticKind `json:"kind"`
	Error           string         `json:"error"`
	StandardHeight  int64          `json:"standard_height"`
	CommittedHeight int64          `json:"committed_height"`
	Hint            string         `json:"hint,omitempty"`
	PossibleCause   string         `json:"possible_cause,omitempty"`
}

func newSubmitDiagnostics(err error, standardHeight, committedHeight int64) *SubmitDiagnostics {
	msg := err.Error()
	d := &SubmitDiagnostics{
		Kind:            DiagnosticSubmitRejected,
		Error:           msg,
		StandardHeight:  standardHeight,
		CommittedHeight: committedHeight,
	}
	if isMissingInputs(msg) {
		d.Kind = DiagnosticInputsMissing
		d.Hint = hintNodesNotSynced
		d.PossibleCause = causeStateMismatch
	}
	return d
}

func isMissingInputs(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "-25") ||
		strings.Contains(lower, "missing inputs") ||
		strings.Contains(lower, "bad-txns-inputs-missingorspent")
}

type TxError struct {
	Kind        ErrorKind
	Txid        string
	Reason      string
	Diagnostics *SubmitDiagnostics
	cause       error
}

func (e *TxError) Error() string {
	var b strings.Builder
	if e.Txid != "" {
		b.WriteString(e.Txid)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *TxError) Cause() error  { return e.cause }
func (e *TxError) Unwrap() error { return e.cause }

func newTxError(kind ErrorKind, txid, reason string, cause error) *TxError {
	return &TxError{Kind: kind, Txid: txid, Reason: reason, cause: cause}
}

func invalidTxid(txid string, cause error) error {
	return newTxError(InputError, "", fmt.Sprintf("invalid txid %q", txid), errors.Cause(cause))
}

func notFound(txid, reason string) error {
	return newTxError(NotFoundError, txid, reason, nil)
}

func stateConflict(txid, reason string) error {
	return newTxError(StateConflict, txid, reason, nil)
}

func backendFailure(txid, reason string, cause error, diag *SubmitDiagnostics) error {
	e := newTxError(BackendError, txid, reason, cause)
	e.Diagnostics = diag
	return e
}

// KindOf returns the kind of the first TxError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var txErr *TxError
	if errors.As(err, &txErr) {
		return txErr.Kind, true
	}
	return 0, false
}

func DiagnosticsOf(err error) *SubmitDiagnostics {
	var txErr *TxError
	if errors.As(err, &txErr) {
		return txErr.Diagnostics
	}
	return nil
}

func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
