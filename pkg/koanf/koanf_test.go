package koanf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Str  string     `koanf:"str"`
	Int  int        `koanf:"int"`
	Http HttpServer `koanf:"http"`
}

func TestProvideFromEnv(t *testing.T) {
	t.Setenv("STR", "temp")
	t.Setenv("INT", "1")
	t.Setenv("HTTP__ADDRESS", "localhost:1234")

	c := Provide("", testConfig{})

	assert.Equal(t, "temp", c.Str)
	assert.Equal(t, 1, c.Int)
	assert.Equal(t, "localhost:1234", c.Http.Address)
}

func TestProvideDefaults(t *testing.T) {
	c := Provide("", testConfig{
		Str:  "fallback",
		Http: HttpServer{Address: "localhost:8000"},
	})

	assert.Equal(t, "fallback", c.Str)
	assert.Equal(t, "localhost:8000", c.Http.Address)
}

func TestProvideEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP__ADDRESS", "0.0.0.0:9000")

	c := Provide("", testConfig{Http: HttpServer{Address: "localhost:8000"}})

	assert.Equal(t, "0.0.0.0:9000", c.Http.Address)
}

func TestProvidePrefixed(t *testing.T) {
	t.Setenv("CHAT_STR", "scoped")

	c := Provide("chat", testConfig{})

	assert.Equal(t, "scoped", c.Str)
}
