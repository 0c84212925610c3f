package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.With(String("component", "stats")).Info(context.Background(), "hello",
		Int("n", 3),
		Float64("mean", 0.5),
		Duration("elapsed", time.Second),
		Err(errors.New("boom")),
	)

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"component":"stats"`)
	assert.Contains(t, out, `"n":3`)
	assert.Contains(t, out, `"mean":0.5`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})
	ctx := context.Background()

	log.Debug(ctx, "dropped-debug")
	log.Info(ctx, "dropped-info")
	log.Warn(ctx, "kept-warn")
	log.Error(ctx, "kept-error")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Equal(t, 2, strings.Count(out, "kept-"))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in).Level().String(), "level %q", in)
	}
}

func TestNoop(t *testing.T) {
	log := Noop().With(Int("x", 1))
	assert.NotPanics(t, func() {
		log.Info(context.Background(), "nothing")
	})
}
