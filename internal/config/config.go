// Package config loads sanctuary's settings.yaml into a viper-backed
// Settings snapshot, with SANCTUARY_* environment overrides and live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g.
// SANCTUARY_CAROUSELS_NEWS_AUTOPLAY_INTERVAL=8s.
const EnvPrefix = "SANCTUARY"

// Config is the settings contract the rest of the program depends on.
type Config interface {
	// Settings returns the current snapshot.
	Settings() Settings
	// Path is the settings file location, whether or not it exists.
	Path() string
	// Loaded reports whether Path existed and was read.
	Loaded() bool
	// ContentPath resolves content_file against the settings directory.
	// Empty means the embedded content.
	ContentPath() string
	// Watch re-reads the file on every change and reports the new snapshot.
	// A file that fails validation reports the error and keeps the
	// previous snapshot.
	Watch(onChange func(Settings, error)) error
}

type configImpl struct {
	v        *viper.Viper
	path     string
	loaded   bool
	settings Settings

	mu sync.RWMutex
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

// New loads the settings file at path, or at SettingsPath() when path is
// empty. A missing file is not an error: the defaults apply.
func New(path string) (Config, error) {
	if path == "" {
		p, err := SettingsPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine sanctuary home: %w", err)
		}
		path = p
	}

	c := &configImpl{v: newViper(), path: path}
	c.v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := c.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		c.loaded = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}

	s, err := decode(c.v)
	if err != nil {
		return nil, err
	}
	c.settings = s
	return c, nil
}

// NewFromString builds a Config from YAML text. Environment overrides
// still apply. Used by tests and by callers validating unsaved text.
func NewFromString(str string) (Config, error) {
	v := newViper()
	if err := v.ReadConfig(strings.NewReader(str)); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &configImpl{v: v, settings: s, loaded: true}, nil
}

func (c *configImpl) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *configImpl) Path() string { return c.path }

func (c *configImpl) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *configImpl) ContentPath() string {
	p := c.Settings().ContentFile
	if p == "" || filepath.IsAbs(p) || c.path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}

func (c *configImpl) Watch(onChange func(Settings, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || c.path == "" {
		return fmt.Errorf("watching settings requires an existing settings file")
	}

	c.v.OnConfigChange(func(fsnotify.Event) {
		s, err := c.reload()
		if onChange != nil {
			onChange(s, err)
		}
	})
	c.v.WatchConfig()
	return nil
}

// reload runs after viper has re-read the file.
func (c *configImpl) reload() (Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := checkParses(c.path); err != nil {
		return c.settings, err
	}
	s, err := decode(c.v)
	if err != nil {
		return c.settings, err
	}
	c.settings = s
	return s, nil
}

func decode(v *viper.Viper) (Settings, error) {
	var s Settings
	// Exact decoding rejects unknown keys instead of ignoring them.
	if err := v.UnmarshalExact(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		millisecondsHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsHook reads bare numbers as milliseconds, so
// autoplay_interval: 5000 means five seconds.
func millisecondsHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()) * time.Millisecond, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(reflect.ValueOf(data).Uint()) * time.Millisecond, nil
		case reflect.String:
			if n, err := strconv.ParseInt(strings.TrimSpace(data.(string)), 10, 64); err == nil {
				return time.Duration(n) * time.Millisecond, nil
			}
		}
		return data, nil
	}
}

// checkParses reports YAML syntax errors in path. The watcher's own
// re-read swallows them and keeps the previous values.
func checkParses(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return nil
}
