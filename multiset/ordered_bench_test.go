package multiset

import (
	"math/rand"
	"testing"
)

func BenchmarkOrdered_Insert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint64, 4096)
	for i := range values {
		values[i] = uint64(rng.Intn(1000))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewOrdered()
		for _, v := range values {
			m.Insert(v)
		}
	}
}

func BenchmarkOrdered_Threshold(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := NewOrdered()
	for i := 0; i < 4096; i++ {
		m.Insert(uint64(rng.Intn(1000)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Threshold(2048)
	}
}
