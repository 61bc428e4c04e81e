package level

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, Info, r.Resolve("info"))
	assert.Equal(t, Trace, r.Resolve("trace"))
	assert.Equal(t, Verbose, r.Resolve("verbose"))
	// 别名类型
	assert.Equal(t, Success, r.Resolve("fail"))
	assert.Equal(t, Info, r.Resolve("ready"))
	assert.Equal(t, Log, r.Resolve("box"))
}

func TestRegisterOverwrite(t *testing.T) {
	r := NewRegistry()

	err := r.Register(TypeSpec{Name: "", Level: Info})
	assert.Equal(t, errEmptyTypeName, err)

	require.NoError(t, r.Register(TypeSpec{Name: "custom", Level: Level(42)}))
	assert.Equal(t, Level(42), r.Resolve("custom"))

	// 同名注册后写覆盖先写
	require.NoError(t, r.Register(TypeSpec{Name: "custom", Level: Debug}))
	assert.Equal(t, Debug, r.Resolve("custom"))
}

func TestResolveFallback(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, Log, r.Resolve("no-such-type"))
	_, ok := r.Lookup("no-such-type")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		input string
		want  Level
	}{
		{"info", Info},
		{"4", Info},
		{"-99", Silent},
		{"-200", Silent},
		{"200", Verbose},
		{"42", Level(42)},
		{"unknown", Log},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Normalize(tt.input))
		})
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(TypeSpec{Name: "custom", Level: Info}))

	names := r.Names()
	assert.Contains(t, names, "info")
	assert.Contains(t, names, "custom")
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(TypeSpec{Name: "t" + strconv.Itoa(i), Level: Info})
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Resolve("info")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, Info, r.Resolve("t0"))
}
