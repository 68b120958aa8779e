package configs

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ConfigTypeKey is the JSON field holding the OpConfigType discriminator.
const ConfigTypeKey = "config_type"

// ConfigKey is the JSON field holding the configuration fields.
const ConfigKey = "config"

var (
	// registry maps OpConfigType to a constructor of an empty configuration.
	registry   = make(map[string]func() OpConfig)
	registryMu sync.RWMutex
)

// Register the constructor of a concrete configuration, so it can be read back with Unmarshal.
// It uses the OpConfigType of the constructed instance as the key, and it panics if registered twice.
//
// It is usually called in an init() function next to the configuration definition.
func Register[C OpConfig](constructor func() C) {
	registryMu.Lock()
	defer registryMu.Unlock()
	configType := constructor().OpConfigType()
	if _, found := registry[configType]; found {
		panic(errors.Errorf("configs.Register: config type %q registered twice", configType))
	}
	registry[configType] = func() OpConfig { return constructor() }
}

// RegisteredTypes returns the sorted list of registered configuration types.
func RegisteredTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for configType := range registry {
		types = append(types, configType)
	}
	sort.Strings(types)
	return types
}

// envelope is the serialized form of a configuration.
type envelope struct {
	ConfigType string          `json:"config_type"`
	Config     json.RawMessage `json:"config,omitempty"`
}

// Marshal serializes conf along with its type, so it can be read back by Unmarshal.
// A nil conf is serialized as "null".
func Marshal(conf OpConfig) ([]byte, error) {
	if conf == nil {
		return []byte("null"), nil
	}
	fields, err := json.Marshal(conf)
	if err != nil {
		return nil, errors.Wrapf(err, "configs.Marshal failed to serialize %q", conf.OpConfigType())
	}
	return json.Marshal(envelope{ConfigType: conf.OpConfigType(), Config: fields})
}

// Unmarshal reads a configuration serialized by Marshal. It uses the registered constructor of the serialized
// configuration type, see Register.
//
// "null" or empty data returns a nil configuration.
func Unmarshal(data []byte) (OpConfig, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "configs.Unmarshal failed to read the configuration type")
	}
	registryMu.RLock()
	constructor, found := registry[env.ConfigType]
	registryMu.RUnlock()
	if !found {
		return nil, errors.Errorf("configs.Unmarshal: unknown config type %q, registered types are %q",
			env.ConfigType, RegisteredTypes())
	}
	conf := constructor()
	if len(env.Config) > 0 {
		if err := json.Unmarshal(env.Config, conf); err != nil {
			return nil, errors.Wrapf(err, "configs.Unmarshal failed to load %q into %T", env.ConfigType, conf)
		}
	}
	return conf, nil
}

// Wrapper holds a configuration inside a larger JSON document, e.g.:
//
//	type Job struct {
//		Name string          `json:"name"`
//		Conv configs.Wrapper `json:"conv"`
//	}
type Wrapper struct {
	Value OpConfig
}

// Wrap returns a Wrapper holding conf.
func Wrap(conf OpConfig) Wrapper {
	return Wrapper{Value: conf}
}

// MarshalJSON implements json.Marshaler.
func (w Wrapper) MarshalJSON() ([]byte, error) {
	return Marshal(w.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Wrapper) UnmarshalJSON(data []byte) error {
	conf, err := Unmarshal(data)
	if err != nil {
		return err
	}
	w.Value = conf
	return nil
}
