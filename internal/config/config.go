package config

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/spf13/viper"

	"launch/game"
)

// FileName is the config file name without its .json extension
const FileName = "launch"

// EnvPrefix prefixes environment overrides, e.g. LAUNCH_LOGLEVEL=debug
const EnvPrefix = "LAUNCH"

// Load sets default values and reads the JSON config file from configDir.
// Defaults stay in effect when the file is missing; the returned error then
// wraps viper.ConfigFileNotFoundError.
func Load(configDir string) error {
	d := game.DefaultConfig()

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)

	viper.SetDefault("physics.gravity", d.Gravity)
	viper.SetDefault("physics.scale", d.Scale)
	viper.SetDefault("physics.airResistance", d.AirResistance)
	viper.SetDefault("physics.restitution", d.Restitution)
	viper.SetDefault("physics.settleSpeed", d.SettleSpeed)
	viper.SetDefault("physics.damping", string(d.Damping))

	viper.SetDefault("window.width", d.WindowWidth)
	viper.SetDefault("window.height", d.WindowHeight)
	viper.SetDefault("window.title", d.Title)
	viper.SetDefault("window.tps", d.TPS)

	viper.SetDefault("projectile.radius", d.ProjectileRadius)
	viper.SetDefault("projectile.originX", d.LaunchOrigin.X)
	viper.SetDefault("projectile.originY", d.LaunchOrigin.Y)

	viper.SetDefault("target.width", d.TargetWidth)
	viper.SetDefault("target.height", d.TargetHeight)
	viper.SetDefault("target.tweenSeconds", d.RelocateTweenSeconds)

	viper.SetDefault("indicator.length", d.IndicatorLength)
	viper.SetDefault("indicator.thickness", d.IndicatorThickness)

	viper.SetDefault("controls.minAngle", d.MinAngle)
	viper.SetDefault("controls.maxAngle", d.MaxAngle)
	viper.SetDefault("controls.minSpeed", d.MinSpeed)
	viper.SetDefault("controls.maxSpeed", d.MaxSpeed)
	viper.SetDefault("controls.defaultAngle", d.DefaultAngle)
	viper.SetDefault("controls.defaultSpeed", d.DefaultSpeed)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Game builds the simulation config from the loaded values and validates it
func Game() (game.Config, error) {
	cfg := game.Config{
		Gravity:              viper.GetFloat64("physics.gravity"),
		Scale:                viper.GetFloat64("physics.scale"),
		AirResistance:        viper.GetFloat64("physics.airResistance"),
		Restitution:          viper.GetFloat64("physics.restitution"),
		SettleSpeed:          viper.GetFloat64("physics.settleSpeed"),
		Damping:              game.DampingMode(viper.GetString("physics.damping")),
		WindowWidth:          viper.GetFloat64("window.width"),
		WindowHeight:         viper.GetFloat64("window.height"),
		Title:                viper.GetString("window.title"),
		TPS:                  viper.GetInt("window.tps"),
		ProjectileRadius:     viper.GetFloat64("projectile.radius"),
		LaunchOrigin:         r2.Point{X: viper.GetFloat64("projectile.originX"), Y: viper.GetFloat64("projectile.originY")},
		TargetWidth:          viper.GetFloat64("target.width"),
		TargetHeight:         viper.GetFloat64("target.height"),
		RelocateTweenSeconds: viper.GetFloat64("target.tweenSeconds"),
		IndicatorLength:      viper.GetFloat64("indicator.length"),
		IndicatorThickness:   viper.GetFloat64("indicator.thickness"),
		MinAngle:             viper.GetFloat64("controls.minAngle"),
		MaxAngle:             viper.GetFloat64("controls.maxAngle"),
		MinSpeed:             viper.GetFloat64("controls.minSpeed"),
		MaxSpeed:             viper.GetFloat64("controls.maxSpeed"),
		DefaultAngle:         viper.GetFloat64("controls.defaultAngle"),
		DefaultSpeed:         viper.GetFloat64("controls.defaultSpeed"),
	}

	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LogLevel returns the configured log level name
func LogLevel() string {
	return viper.GetString("logLevel")
}

// Seed returns the configured random seed; 0 means seed from the wall clock
func Seed() uint64 {
	return viper.GetUint64("seed")
}
