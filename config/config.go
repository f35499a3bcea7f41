// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to the suffix of their environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup reads lifo.toml from where.Config() on top of the defaults, binds
// LIFO_* environment variables and validates the result. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Lifo)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Lifo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return validate()
}

func validate() error {
	if capacity := viper.GetInt(key.StackInitialCapacity); capacity < 0 {
		return fmt.Errorf("%s: capacity must not be negative, got %d", key.StackInitialCapacity, capacity)
	}

	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		return fmt.Errorf("%s: unknown variant %q, expected one of %s",
			key.IconsVariant, variant, strings.Join(icon.AvailableVariants(), ", "))
	}

	return nil
}
