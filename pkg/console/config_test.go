package console

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/consola-go/pkg/level"
)

const sampleYAML = `
level: debug
tag: gateway
queue_capacity: 128
flush_schedule: "@every 1s"
throttle:
  window: 250ms
  min_count: 3
format:
  show_date: false
  colors: false
  unicode: false
  columns: 100
  error_chain_depth: 8
types:
  - name: audit
    level: warn
  - name: metric
    level: "7"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consola.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	reg := level.NewRegistry()
	cfg, err := LoadConfig(writeConfigFile(t, sampleYAML), reg)
	require.NoError(t, err)

	assert.Equal(t, level.Debug, cfg.Level)
	assert.Equal(t, "gateway", cfg.Tag)
	assert.Equal(t, 128, cfg.QueueCapacity)
	assert.Equal(t, "@every 1s", cfg.FlushSchedule)
	assert.Equal(t, 250*time.Millisecond, cfg.Throttle.Window)
	assert.Equal(t, uint32(3), cfg.Throttle.MinCount)

	assert.False(t, cfg.Format.ShowDate)
	assert.False(t, cfg.Format.Colors)
	assert.False(t, cfg.Format.Unicode)
	assert.Equal(t, 100, cfg.Format.Columns)
	assert.Equal(t, 8, cfg.Format.ErrorChainDepth)

	// 自定义类型已注册，等级接受名字与整数两种写法
	assert.Equal(t, level.Warn, reg.Resolve("audit"))
	assert.Equal(t, level.Trace, reg.Resolve("metric"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "level: [unclosed"), nil)
	assert.Error(t, err)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(&FileConfig{}, nil)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Level, cfg.Level)
	assert.Equal(t, def.Throttle, cfg.Throttle)
	assert.True(t, cfg.Format.ShowDate)
	assert.True(t, cfg.Format.Colors)
}

func TestParseConfigInvalidWindow(t *testing.T) {
	fc := &FileConfig{Throttle: ThrottleFileConfig{Window: "soon"}}
	_, err := ParseConfig(fc, nil)
	assert.Error(t, err)
}

func TestParseConfigDegenerateThrottle(t *testing.T) {
	fc := &FileConfig{Throttle: ThrottleFileConfig{Window: "1s", MinCount: 1}}
	_, err := ParseConfig(fc, nil)
	assert.Error(t, err)
}

func TestParseConfigBuildsWorkingLogger(t *testing.T) {
	reg := level.NewRegistry()
	cfg, err := ParseConfig(&FileConfig{
		Level: "info",
		Types: []TypeFileConfig{{Name: "deploy", Level: "log"}},
	}, reg)
	require.NoError(t, err)

	sink := &captureReporter{}
	l, err := New(cfg, WithRegistry(reg), WithReporters(sink))
	require.NoError(t, err)
	defer l.Close()

	l.Log("deploy", "rolled out")
	l.Debug("too verbose")

	recs := sink.all()
	require.Len(t, recs, 1)
	assert.Equal(t, "deploy", recs[0].Type)
}
