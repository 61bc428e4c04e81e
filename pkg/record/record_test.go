package record

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/lk2023060901/consola-go/pkg/level"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  ArgValue
	}{
		{"string", "hello", StringArg("hello")},
		{"bool", true, BoolArg(true)},
		{"int", 5, NumberArg(5)},
		{"int64", int64(-7), NumberArg(-7)},
		{"uint", uint(9), NumberArg(9)},
		{"float", 1.5, NumberArg(1.5)},
		{"bytes", []byte("raw"), StringArg("raw")},
		{"nil", nil, DebugArg("<nil>")},
		{"passthrough", ErrorArg("boom"), ErrorArg("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeError(t *testing.T) {
	got := Normalize(errors.New("boom"))
	assert.Equal(t, KindError, got.Kind)
	assert.Equal(t, "boom", got.Str)
}

func TestNormalizeStructured(t *testing.T) {
	got := Normalize(map[string]int{"a": 1})
	assert.Equal(t, KindJSON, got.Kind)
	assert.Equal(t, `{"a":1}`, got.Str)

	got = Normalize([]int{1, 2, 3})
	assert.Equal(t, KindJSON, got.Kind)
	assert.Equal(t, "[1,2,3]", got.Str)

	// 无法 JSON 化的输入退化为调试文本
	got = Normalize(func() {})
	assert.Equal(t, KindDebug, got.Kind)
}

func TestArgValueString(t *testing.T) {
	assert.Equal(t, "5", NumberArg(5).String())
	assert.Equal(t, "1.5", NumberArg(1.5).String())
	assert.Equal(t, "true", BoolArg(true).String())
	assert.Equal(t, "x", StringArg("x").String())
}

func TestBuildMessage(t *testing.T) {
	r := New(time.Unix(0, 0), level.Info, "info", "hello", 5, true)
	assert.Equal(t, "hello 5 true", r.Message)
	assert.Len(t, r.Args, 3)

	empty := New(time.Unix(0, 0), level.Info, "info")
	assert.Equal(t, "", empty.Message)
}

func TestNewCapturesError(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := errors.Wrap(cause, "wrapped")

	r := New(time.Unix(0, 0), level.Error, "error", "failed:", wrapped)
	assert.Equal(t, wrapped, r.Err)
	assert.Equal(t, "failed: wrapped: root cause", r.Message)
}

func TestAttachError(t *testing.T) {
	r := New(time.Unix(0, 0), level.Error, "error", "operation failed")
	r.AttachError(errors.New("disk full"))

	assert.Equal(t, "operation failed disk full", r.Message)
	assert.NotNil(t, r.Err)

	// nil 错误不改变记录
	before := r.Message
	r.AttachError(nil)
	assert.Equal(t, before, r.Message)
}

func TestRaw(t *testing.T) {
	r := Raw(time.Unix(0, 0), level.Log, "log", "verbatim output")
	assert.True(t, r.IsRaw)
	assert.Equal(t, "verbatim output", r.Message)
	assert.Empty(t, r.Args)
}

func TestMergeDefaults(t *testing.T) {
	d := Defaults{
		Tag:        "srv",
		Additional: []ArgValue{StringArg("base")},
		Meta: []MetaField{
			{Key: "env", Value: StringArg("prod")},
			{Key: "zone", Value: StringArg("a")},
		},
	}

	r := New(time.Unix(0, 0), level.Info, "info", "msg").
		WithAdditional(StringArg("own")).
		WithMeta(MetaField{Key: "zone", Value: StringArg("b")}, MetaField{Key: "req", Value: StringArg("42")})
	r.MergeDefaults(d)

	assert.Equal(t, "srv", r.Tag)
	assert.Equal(t, []ArgValue{StringArg("base"), StringArg("own")}, r.Additional)
	assert.Equal(t, []MetaField{
		{Key: "env", Value: StringArg("prod")},
		{Key: "zone", Value: StringArg("b")},
		{Key: "req", Value: StringArg("42")},
	}, r.Meta)

	// 记录已有标签时默认值不覆盖
	tagged := New(time.Unix(0, 0), level.Info, "info", "msg").WithTag("own")
	tagged.MergeDefaults(d)
	assert.Equal(t, "own", tagged.Tag)
}

func TestClone(t *testing.T) {
	r := New(time.Unix(0, 0), level.Info, "info", "msg").
		WithMeta(MetaField{Key: "k", Value: StringArg("v")})
	dup := r.Clone()

	dup.RepetitionCount = 7
	dup.Meta[0].Value = StringArg("changed")

	assert.Equal(t, uint32(0), r.RepetitionCount)
	assert.Equal(t, StringArg("v"), r.Meta[0].Value)
}
