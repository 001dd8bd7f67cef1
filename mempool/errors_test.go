package mempool

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDiagnostics(t *testing.T) {
	cases := []struct {
		msg  string
		kind DiagnosticKind
	}{
		{"-25: bad-txns-inputs-missingorspent", DiagnosticInputsMissing},
		{"Missing inputs", DiagnosticInputsMissing},
		{"-26: min relay fee not met", DiagnosticSubmitRejected},
	}
	for _, c := range cases {
		d := newSubmitDiagnostics(errors.New(c.msg), 820000, 819990)
		assert.Equal(t, c.kind, d.Kind, c.msg)
		assert.Equal(t, c.msg, d.Error)
		assert.Equal(t, int64(820000), d.StandardHeight)
		assert.Equal(t, int64(819990), d.CommittedHeight)
		if c.kind == DiagnosticInputsMissing {
			assert.Equal(t, hintNodesNotSynced, d.Hint)
			assert.Equal(t, causeStateMismatch, d.PossibleCause)
		} else {
			assert.Empty(t, d.Hint)
		}
	}
}

func TestKindOfWrapped(t *testing.T) {
	diag := &SubmitDiagnostics{Kind: DiagnosticSubmitRejected}
	err := errors.Wrap(backendFailure("ab", "rejected", errors.New("boom"), diag), "schedule")

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, BackendError, kind)
	assert.Same(t, diag, DiagnosticsOf(err))
	assert.Contains(t, err.Error(), "ab: rejected: boom")

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, DiagnosticsOf(errors.New("plain")))
}
