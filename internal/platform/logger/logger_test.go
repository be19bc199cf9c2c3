package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"INFO":    Info,
		"warning": Warn,
		" error ": Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestWith_EmptyFieldsReturnsSameLogger(t *testing.T) {
	l := NewNop()
	assert.Same(t, l, l.With(nil))
	assert.NotSame(t, l, l.With(map[string]any{"pet_id": 1}))
}

func TestToZapFields_SortsKeysAndSkipsBlank(t *testing.T) {
	err := errors.New("boom")
	got := toZapFields(map[string]any{"b": 2, "a": 1, " ": "skip", "error": err})

	if assert.Len(t, got, 3) {
		assert.Equal(t, "a", got[0].Key)
		assert.Equal(t, "b", got[1].Key)
		assert.Equal(t, zap.NamedError("error", err), got[2])
	}
}
