package bson

import (
	"errors"
	"testing"

	"github.com/zoobzio/valueptr"
)

type document struct {
	Name  string   `bson:"name"`
	Count int      `bson:"count"`
	Tags  []string `bson:"tags"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := document{Name: "test", Count: 42, Tags: []string{"a", "b"}}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored document
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Count != original.Count || len(restored.Tags) != 2 {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v document
	err := c.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestCodecCloner_Isolation(t *testing.T) {
	cloner, err := valueptr.NewCodecCloner[document](New())
	if err != nil {
		t.Fatalf("NewCodecCloner() error: %v", err)
	}
	if cloner.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", cloner.ContentType(), "application/bson")
	}

	p := valueptr.NewWithCloner(&document{Name: "primary", Count: 5, Tags: []string{"x", "y"}}, cloner)
	defer p.Close()

	q, err := p.Copy()
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	defer q.Close()

	if q.Get() == p.Get() {
		t.Fatal("copy should own a distinct allocation")
	}
	if q.Deref().Name != "primary" || q.Deref().Count != 5 {
		t.Errorf("copy = %+v, want primary/5", q.Value())
	}

	q.Deref().Tags[0] = "changed"
	if p.Deref().Tags[0] != "x" {
		t.Errorf("source Tags[0] = %q, want %q", p.Deref().Tags[0], "x")
	}
}

func TestCloner_Shared(t *testing.T) {
	valueptr.ResetRegistry()
	defer valueptr.ResetRegistry()

	first, err := Cloner[document]()
	if err != nil {
		t.Fatalf("Cloner() error: %v", err)
	}
	second, err := Cloner[document]()
	if err != nil {
		t.Fatalf("Cloner() error: %v", err)
	}
	if first != second {
		t.Error("Cloner() should return the cached cloner")
	}

	out, err := first.Clone(&document{Name: "shared", Count: 1, Tags: []string{"t"}})
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	if out.Name != "shared" || out.Count != 1 || len(out.Tags) != 1 {
		t.Errorf("Clone() = %+v, want shared/1/[t]", out)
	}
}

func TestCloner_ScalarFails(t *testing.T) {
	cloner, err := valueptr.NewCodecCloner[int](New())
	if err != nil {
		t.Fatalf("NewCodecCloner() error: %v", err)
	}

	n := 7
	if _, err := cloner.Clone(&n); !errors.Is(err, valueptr.ErrMarshal) {
		t.Errorf("Clone() error = %v, want ErrMarshal", err)
	}
}
