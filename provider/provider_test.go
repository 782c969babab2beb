package provider_test

import (
	"sync"
	"testing"

	"github.com/P1x3lc0w/P1x3lc0w.Common/provider"
	"github.com/stretchr/testify/assert"
)

func TestSimple_Get(t *testing.T) {
	t.Run("returns the value it was created with", func(t *testing.T) {
		p := provider.New("foo")
		assert.Equal(t, "foo", p.Get())
		assert.Equal(t, "foo", p.Get())
	})

	t.Run("zero value", func(t *testing.T) {
		var p provider.Simple[int]
		assert.Equal(t, 0, p.Get())
	})

	t.Run("safe for concurrent reads", func(t *testing.T) {
		p := provider.New(map[string]int{"a": 1})

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, 1, p.Get()["a"])
			}()
		}
		wg.Wait()
	})
}

func TestFunc_Get(t *testing.T) {
	calls := 0
	var p provider.Provider[int] = provider.Func[int](func() int {
		calls++
		return calls * 10
	})

	assert.Equal(t, 10, p.Get())
	assert.Equal(t, 20, p.Get())
}
