package valueptr_test

import (
	"testing"

	"github.com/zoobzio/capitan"
	capitantesting "github.com/zoobzio/capitan/testing"
	"github.com/zoobzio/valueptr"
)

// captureSignal records the events emitted on signal while fn runs, keeping
// only those carrying typeName.
func captureSignal(t *testing.T, signal capitan.Signal, typeName string, fn func()) []capitantesting.CapturedEvent {
	t.Helper()

	capture := capitantesting.NewEventCapture()
	listener := capitan.Hook(signal, capture.Handler())
	fn()
	listener.Close()

	var out []capitantesting.CapturedEvent
	for _, e := range capture.Events() {
		if valueptr.KeyTypeName.ExtractFromFields(e.Fields) == typeName {
			out = append(out, e)
		}
	}
	return out
}
