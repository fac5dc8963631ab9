// Package config wires viper to the streamfront configuration file, environment and defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/constant"
	"github.com/streamfront/streamfront/filesystem"
	"github.com/streamfront/streamfront/where"
)

// EnvKeyReplacer maps dotted keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds STREAMFRONT_* variables and reads streamfront.toml if present.
func Setup() error {
	viper.SetConfigName(constant.Streamfront)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Streamfront)
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
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
