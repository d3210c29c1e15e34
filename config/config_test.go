package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ibr/memory"
)

func writeConfig(t *testing.T, text string) (path string) {
	path = filepath.Join(t.TempDir(), "ibr.toml")
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal("ibr", cfg.Repl.Name)
	assert.Equal(0, cfg.Log.Verbosity)

	mode, err := cfg.Mode()
	assert.NoError(err)
	assert.Equal(memory.MODE_UNBOUNDED, mode)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
[interpreter]
cells = "byte"

[repl]
name = "bf"

[log]
verbosity = 2
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("bf", cfg.Repl.Name)
	assert.Equal(2, cfg.Log.Verbosity)

	mode, err := cfg.Mode()
	assert.NoError(err)
	assert.Equal(memory.MODE_BYTE, mode)
}

func TestLoad_Partial(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "[repl]\nname = \"tape\"\n")

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("tape", cfg.Repl.Name)
	assert.Equal("unbounded", cfg.Interpreter.Cells)
}

func TestLoad_BadMode(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "[interpreter]\ncells = \"nibble\"\n")

	cfg, err := Load(path)
	assert.Nil(cfg)
	assert.ErrorIs(err, memory.ErrModeInvalid)

	var cfgErr *ErrConfig
	assert.ErrorAs(err, &cfgErr)
	assert.Equal(path, cfgErr.Path)
}

func TestLoad_Syntax(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "[interpreter\n")

	cfg, err := Load(path)
	assert.Nil(cfg)
	assert.Error(err)
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	// The implicit default path may be absent.
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}
