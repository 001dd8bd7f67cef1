package wire

import (
	"net/http"

	"github.com/sat20-labs/txstage/mempool"
)

// ErrorStatus maps an engine error to its HTTP status.
func ErrorStatus(err error) int {
	kind, ok := mempool.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case mempool.NotFoundError:
		return http.StatusNotFound
	case mempool.InputError, mempool.StateConflict, mempool.BackendError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
