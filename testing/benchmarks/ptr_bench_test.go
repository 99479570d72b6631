package benchmarks

import (
	"testing"

	"github.com/zoobzio/valueptr"
	"github.com/zoobzio/valueptr/json"
	"github.com/zoobzio/valueptr/msgpack"
	vptest "github.com/zoobzio/valueptr/testing"
)

type record struct {
	ID     string            `json:"id" msgpack:"id"`
	Tags   []string          `json:"tags" msgpack:"tags"`
	Labels map[string]string `json:"labels" msgpack:"labels"`
}

func newRecord() *record {
	return &record{
		ID:     "123",
		Tags:   []string{"a", "b", "c"},
		Labels: map[string]string{"team": "core", "tier": "gold"},
	}
}

func BenchmarkPtr_Copy_MethodCloner(b *testing.B) {
	p := valueptr.New(&vptest.Counter{N: 1, Tags: []string{"a", "b", "c"}})
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, _ := p.Copy()
		_ = q.Close()
	}
}

func BenchmarkPtr_Copy_DeepCloner(b *testing.B) {
	p := valueptr.NewWithCloner(newRecord(), valueptr.DeepCloner[record]{})
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, _ := p.Copy()
		_ = q.Close()
	}
}

func BenchmarkPtr_Copy_CodecCloner_JSON(b *testing.B) {
	cloner, err := valueptr.NewCodecCloner[record](json.New())
	if err != nil {
		b.Fatal(err)
	}
	p := valueptr.NewWithCloner(newRecord(), cloner)
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, _ := p.Copy()
		_ = q.Close()
	}
}

func BenchmarkPtr_Copy_CodecCloner_MessagePack(b *testing.B) {
	cloner, err := valueptr.NewCodecCloner[record](msgpack.New())
	if err != nil {
		b.Fatal(err)
	}
	p := valueptr.NewWithCloner(newRecord(), cloner)
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, _ := p.Copy()
		_ = q.Close()
	}
}

func BenchmarkPtr_Move(b *testing.B) {
	p := valueptr.New(newRecordCounter())
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := p.Move()
		p.MoveFrom(q)
	}
}

func BenchmarkPtr_Swap(b *testing.B) {
	p := valueptr.New(newRecordCounter())
	q := valueptr.New(newRecordCounter())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Swap(q)
	}
}

func newRecordCounter() *vptest.Counter {
	return &vptest.Counter{N: 1}
}
