package random_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vat/internal/adapters/random"
)

func TestSampler_Range(t *testing.T) {
	s := random.NewSampler()
	for range 1000 {
		v := s.Sample()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSeededSampler_Reproducible(t *testing.T) {
	a := random.NewSeededSampler(42)
	b := random.NewSeededSampler(42)

	for range 100 {
		assert.InDelta(t, a.Sample(), b.Sample(), 0)
	}
}

func TestSeededSampler_Concurrent(t *testing.T) {
	s := random.NewSeededSampler(7)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				v := s.Sample()
				if v < 0 || v >= 1 {
					t.Errorf("sample %v out of range", v)
				}
			}
		})
	}
	wg.Wait()
}
