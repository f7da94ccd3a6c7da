package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestArenaStableAddresses(t *testing.T) {
	a := New[point](2)
	ptrs := make([]*point, 0, 10)
	for i := 0; i < 10; i++ {
		p := a.Alloc()
		p.X = i
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		require.Equal(t, i, p.X, "pointer %d must remain valid after further allocation", i)
	}
	require.Equal(t, 10, a.Len())
}

func TestPoolReuse(t *testing.T) {
	pool := NewPool[point](4)
	h1 := pool.Get()
	h1.Alloc()
	first := h1.Arena()
	h1.Release()

	h2 := pool.Get()
	require.NotNil(t, h2)
	require.Same(t, first, h2.Arena(), "a released arena is handed out again")
	h2.Release()
}
