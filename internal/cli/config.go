// Configuration loading from file, environment and flags.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides, e.g. ALIGNSTORE_ALPHABET.
	envPrefix = "ALIGNSTORE"

	cfgKeyAlphabet         = "alphabet"
	cfgKeyContainer        = "container"
	cfgKeyCheckCoordinates = "check_coordinates"
	cfgKeyLogLevel         = "log_level"
	cfgKeyLineWidth        = "line_width"
)

// defaultConfig is used for keys that no file, variable or flag sets.
var defaultConfig = types.Config{
	Alphabet:         types.AlphabetDNA,
	Container:        types.ContainerAligned,
	CheckCoordinates: false,
	LogLevel:         "info",
	LineWidth:        60,
}

// flagKeys maps global flags to the configuration keys they override.
var flagKeys = map[string]string{
	"alphabet":  cfgKeyAlphabet,
	"container": cfgKeyContainer,
	"log-level": cfgKeyLogLevel,
}

// loadConfig reads config.yaml from configDir using Viper, then applies
// ALIGNSTORE_* environment variables and the flags in fs. A missing
// config.yaml is not an error.
func loadConfig(configDir string, fs *pflag.FlagSet) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAlphabet, defaultConfig.Alphabet)
	v.SetDefault(cfgKeyContainer, defaultConfig.Container)
	v.SetDefault(cfgKeyCheckCoordinates, defaultConfig.CheckCoordinates)
	v.SetDefault(cfgKeyLogLevel, defaultConfig.LogLevel)
	v.SetDefault(cfgKeyLineWidth, defaultConfig.LineWidth)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, sysError(fmt.Errorf("bind flag %s: %w", name, err))
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, userError(fmt.Errorf("read config: %w", err))
		}
	}

	cfg := types.Config{
		Alphabet:         strings.ToLower(v.GetString(cfgKeyAlphabet)),
		Container:        strings.ToLower(v.GetString(cfgKeyContainer)),
		CheckCoordinates: v.GetBool(cfgKeyCheckCoordinates),
		LogLevel:         strings.ToLower(v.GetString(cfgKeyLogLevel)),
		LineWidth:        v.GetInt(cfgKeyLineWidth),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError(fmt.Errorf("invalid configuration: %w", err))
	}
	return cfg, nil
}
