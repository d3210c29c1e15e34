// Package config loads the ibr.toml configuration file.
package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"

	"github.com/ezrec/ibr/memory"
	"github.com/ezrec/ibr/translate"

	_ "github.com/tliron/commonlog/simple"
)

var f = translate.From

var log = commonlog.GetLogger("ibr.config")

// DEFAULT_PATH is the configuration file looked for when none is given.
const DEFAULT_PATH = "ibr.toml"

// Interpreter configures the execution engine.
type Interpreter struct {
	Cells string `toml:"cells"` // Cell mode, "unbounded" or "byte".
}

// Repl configures the interactive session.
type Repl struct {
	Name string `toml:"name"` // Prompt name.
}

// Log configures logging.
type Log struct {
	Verbosity int `toml:"verbosity"`
}

// Config is the ibr.toml file.
type Config struct {
	Interpreter Interpreter `toml:"interpreter"`
	Repl        Repl        `toml:"repl"`
	Log         Log         `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Interpreter: Interpreter{Cells: memory.MODE_UNBOUNDED.String()},
		Repl:        Repl{Name: "ibr"},
	}
}

// Load reads path over the defaults.
// If path is empty, DEFAULT_PATH is read if it exists.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	implicit := len(path) == 0
	if implicit {
		path = DEFAULT_PATH
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if implicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
			return
		}
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	for _, key := range md.Undecoded() {
		log.Warningf("%v: unknown key %v", path, key)
	}

	_, err = cfg.Mode()
	if err != nil {
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return
}

// Mode returns the configured cell mode.
func (cfg *Config) Mode() (memory.Mode, error) {
	return memory.ParseMode(cfg.Interpreter.Cells)
}

// ErrConfig locates an error in a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
