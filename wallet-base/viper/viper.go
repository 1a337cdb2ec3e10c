package viper

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Init reads cfgFile and merges the external configs it lists.
func Init(cfgFile string) error {
	viper.SetConfigFile(cfgFile)
	err := viper.ReadInConfig()
	if err != nil {
		return errors.Wrapf(err, "read config %s failed", cfgFile)
	}

	err = MergeExtIfNecessary()
	if err != nil {
		return errors.Wrap(err, "merge config failed")
	}
	return nil
}

func GetInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return defaultValue
}

func GetString(key string, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func GetStringSlice(key string, defaultValue []string) []string {
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return defaultValue
}
