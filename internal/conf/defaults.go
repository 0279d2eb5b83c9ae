// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "motiontidy")

	viper.SetDefault("log.enabled", true)
	viper.SetDefault("log.path", "motiontidy.log")
	viper.SetDefault("log.rotation", RotationDaily)
	viper.SetDefault("log.maxsize", 1048576)
	viper.SetDefault("log.rotationday", "Sunday")

	viper.SetDefault("bids.dir", ".")
	viper.SetDefault("bids.task", "rest")

	viper.SetDefault("motion.framesperrun", 383)
	viper.SetDefault("motion.resplitdelims", " \t,")

	viper.SetDefault("output.file.enabled", false)
	viper.SetDefault("output.file.path", "")
	viper.SetDefault("output.file.type", "table")
}
