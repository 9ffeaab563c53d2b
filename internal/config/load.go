package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const configFile = "samplestore_config.json"

var (
	cfg  Config
	home = os.Getenv("HOME")

	// FS is the filesystem the config file is read from.
	FS afero.Fs = afero.NewOsFs()
)

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	return v
}

func setDefaultConfig() *viper.Viper {
	v := getViper()
	v.SetDefault("general.data_dir", home+"/.samplestore")
	v.SetDefault("general.debug", false)
	v.SetDefault("rest.addr", "127.0.0.1")
	v.SetDefault("rest.port", 9998)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "")
	v.SetDefault("db.lock_timeout", "5s")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.insecure", true)
	v.SetDefault("tracing.service_name", "sample-store")
	v.SetDefault("snapshot.enabled", false)
	v.SetDefault("snapshot.schedule", "@daily")
	v.SetDefault("snapshot.dir", home+"/.samplestore/snapshots")
	v.SetDefault("snapshot.keep", 7)
	return v
}

// searchPaths lists the config directories in reading order: working
// directory, then home directory, finally /etc/samplestore.
func searchPaths() []string {
	return []string{
		".",
		home + "/.samplestore",
		"/etc/samplestore",
	}
}

// LoadConfig reads the first config file found in the search paths on top of the defaults.
// A missing or malformed file leaves the defaults in place.
func LoadConfig() {
	v := setDefaultConfig()

	config, err := findConfig(searchPaths(), configFile)
	if err == nil {
		// Viper only reads the buffer, the file on disk keeps its comments
		if err = v.ReadConfig(bytes.NewBuffer(removeComments(config))); err != nil {
			v = setDefaultConfig()
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		setDefaultConfig().Unmarshal(&cfg)
	}
}

// LoadConfigFile reads the config from path on top of the defaults.
func LoadConfigFile(path string) error {
	config, err := afero.ReadFile(FS, path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	v := setDefaultConfig()
	if err := v.ReadConfig(bytes.NewBuffer(removeComments(config))); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("could not decode config file: %w", err)
	}
	cfg = loaded
	return nil
}

// SetConfig overrides a single key, e.g. SetConfig("db.driver", "memory").
func SetConfig(key string, value interface{}) {
	v := setDefaultConfig()
	if err := v.MergeConfigMap(toMap(GetConfig())); err != nil {
		return
	}
	v.Set(key, value)
	if err := v.Unmarshal(&cfg); err != nil {
		setDefaultConfig().Unmarshal(&cfg)
	}
}

func GetConfig() *Config {
	if reflect.DeepEqual(cfg, Config{}) {
		LoadConfig()
	}
	return &cfg
}

func findConfig(paths []string, filename string) ([]byte, error) {
	for _, path := range paths {
		fullPath := filepath.Join(path, filename)
		_, err := FS.Stat(fullPath)
		if err == nil {
			return afero.ReadFile(FS, fullPath)
		}
	}

	return nil, fmt.Errorf("file not found in any of the paths")
}

func removeComments(configBytes []byte) []byte {
	re := regexp.MustCompile(`(?m)^\s*//.*$`) // match whole-line '//' comments
	return re.ReplaceAll(configBytes, nil)
}

// toMap flattens c into the nested map form viper merges.
func toMap(c *Config) map[string]interface{} {
	return map[string]interface{}{
		"general": map[string]interface{}{
			"data_dir": c.General.DataDir,
			"debug":    c.General.Debug,
		},
		"rest": map[string]interface{}{
			"addr": c.Rest.Addr,
			"port": c.Rest.Port,
		},
		"db": map[string]interface{}{
			"driver":       c.DB.Driver,
			"path":         c.DB.Path,
			"lock_timeout": c.DB.LockTimeout.String(),
		},
		"tracing": map[string]interface{}{
			"enabled":      c.Tracing.Enabled,
			"endpoint":     c.Tracing.Endpoint,
			"insecure":     c.Tracing.Insecure,
			"service_name": c.Tracing.ServiceName,
		},
		"snapshot": map[string]interface{}{
			"enabled":  c.Snapshot.Enabled,
			"schedule": c.Snapshot.Schedule,
			"dir":      c.Snapshot.Dir,
			"keep":     c.Snapshot.Keep,
		},
	}
}
