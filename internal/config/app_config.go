// Package config resolves command settings from defaults and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tyemirov/ptree/internal/types"
	"github.com/tyemirov/ptree/internal/utils"
)

// Setting keys. Command flags use the same names so they bind directly.
const (
	DepthKey      = "depth"
	ExcludeKey    = "exclude"
	TitleKey      = "title"
	StatisticsKey = "statistics"
	CatalogKey    = "catalog"
	CopyKey       = "copy"

	errorBindFlagFormat     = "bind flag %s: %w"
	errorDecodeFormat       = "decode configuration: %w"
	errorInvalidDepthFormat = "depth must be at least 1, got %d"
)

var settingKeys = []string{DepthKey, ExcludeKey, TitleKey, StatisticsKey, CatalogKey, CopyKey}

// ApplicationConfiguration holds the resolved settings of one command invocation.
type ApplicationConfiguration struct {
	Depth      int      `mapstructure:"depth"`
	Exclude    []string `mapstructure:"exclude"`
	Title      string   `mapstructure:"title"`
	Statistics bool     `mapstructure:"statistics"`
	Catalog    bool     `mapstructure:"catalog"`
	Copy       bool     `mapstructure:"copy"`
}

// LoadApplicationConfiguration overlays the flags of flagSet onto the defaults.
// Only flags named after a setting key are bound; unchanged flags keep the default.
// Settings are never read from files or the environment.
func LoadApplicationConfiguration(flagSet *pflag.FlagSet) (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetDefault(DepthKey, types.DefaultMaxDepth)
	reader.SetDefault(ExcludeKey, []string{})
	reader.SetDefault(TitleKey, types.DefaultProjectTitle)
	reader.SetDefault(StatisticsKey, true)
	reader.SetDefault(CatalogKey, true)
	reader.SetDefault(CopyKey, false)

	if flagSet != nil {
		for _, key := range settingKeys {
			flag := flagSet.Lookup(key)
			if flag == nil {
				continue
			}
			if bindError := reader.BindPFlag(key, flag); bindError != nil {
				return ApplicationConfiguration{}, fmt.Errorf(errorBindFlagFormat, key, bindError)
			}
		}
	}

	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, decodeError)
	}
	configuration.Exclude = normalizeNames(configuration.Exclude)

	if configuration.Depth < 1 {
		return ApplicationConfiguration{}, fmt.Errorf(errorInvalidDepthFormat, configuration.Depth)
	}
	return configuration, nil
}

// IgnoreSet returns the default ignore set extended with the excluded names.
func (configuration ApplicationConfiguration) IgnoreSet() types.NameSet {
	return types.DefaultIgnoreSet().Union(types.NewNameSet(configuration.Exclude...))
}

func normalizeNames(names []string) []string {
	trimmedNames := make([]string, 0, len(names))
	for _, name := range names {
		trimmedName := strings.TrimSuffix(strings.TrimSpace(name), "/")
		if trimmedName == "" {
			continue
		}
		trimmedNames = append(trimmedNames, trimmedName)
	}
	return utils.DeduplicatePatterns(trimmedNames)
}
