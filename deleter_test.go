package valueptr_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/valueptr"
	vptest "github.com/zoobzio/valueptr/testing"
)

type credentials struct {
	User     string
	Password string
}

func TestHeapDeleter(_ *testing.T) {
	// Should not panic
	valueptr.HeapDeleter[counter]{}.Delete(nil)
	valueptr.HeapDeleter[counter]{}.Delete(&counter{})
}

func TestDeleterFunc_SkipsNil(t *testing.T) {
	calls := 0
	d := valueptr.DeleterFunc[counter](func(*counter) { calls++ })

	d.Delete(nil)
	d.Delete(&counter{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCloseDeleter(t *testing.T) {
	r := &vptest.Resource{Name: "conn"}
	p := valueptr.NewWithDeleter(r, valueptr.CloseDeleter[vptest.Resource]{})

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !r.Closed {
		t.Error("CloseDeleter should close the pointee")
	}
}

func TestCloseDeleter_ErrorIsSwallowed(t *testing.T) {
	closeErr := errors.New("connection reset")
	r := &vptest.Resource{Name: "conn", CloseErr: closeErr}

	events := captureSignal(t, valueptr.SignalDeleteFailed, "testing.Resource", func() {
		valueptr.CloseDeleter[vptest.Resource]{}.Delete(r)
	})

	if !r.Closed {
		t.Error("CloseDeleter should still call Close")
	}
	if len(events) != 1 {
		t.Fatalf("delete failed events = %d, want 1", len(events))
	}
	if events[0].Severity != capitan.SeverityError {
		t.Errorf("Severity = %v, want %v", events[0].Severity, capitan.SeverityError)
	}
	if got := valueptr.KeyError.ExtractFromFields(events[0].Fields); !errors.Is(got, closeErr) {
		t.Errorf("error field = %v, want %v", got, closeErr)
	}
}

func TestCloseDeleter_NoEventOnSuccess(t *testing.T) {
	r := &vptest.Resource{Name: "clean"}

	events := captureSignal(t, valueptr.SignalDeleteFailed, "testing.Resource", func() {
		valueptr.CloseDeleter[vptest.Resource]{}.Delete(r)
	})

	if len(events) != 0 {
		t.Errorf("delete failed events = %d, want 0", len(events))
	}
}

func TestCloseDeleter_NotCloser(_ *testing.T) {
	valueptr.CloseDeleter[counter]{}.Delete(&counter{N: 1})
	valueptr.CloseDeleter[counter]{}.Delete(nil)
}

func TestZeroDeleter(t *testing.T) {
	creds := &credentials{User: "alice", Password: "hunter2"}
	p := valueptr.NewWithDeleter(creds, valueptr.ZeroDeleter[credentials]{})

	p.Reset(nil)

	if creds.User != "" || creds.Password != "" {
		t.Errorf("ZeroDeleter left %+v, want zero value", *creds)
	}
}
