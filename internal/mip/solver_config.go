package mip

import (
	"strings"

	"github.com/spf13/viper"
)

// Engine binaries are resolved from a solvers.yaml file in the working
// directory or SCHEDULEOPT_-prefixed environment variables (e.g.
// SCHEDULEOPT_HIGHS_PATH), defaulting to the bare binary names on PATH.
var config = loadConfig()

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("highs.path", "highs")
	v.SetDefault("cbc.path", "cbc")
	v.SetDefault("glpk.path", "glpsol")

	v.SetEnvPrefix("scheduleopt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("solvers")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	return v
}

func binaryPath(engine string) string {
	return config.GetString(engine + ".path")
}
