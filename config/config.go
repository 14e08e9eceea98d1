package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/nstehr/ctz-core/engine"
	"github.com/nstehr/ctz-core/model"
)

// FileName is the config file looked up in the config directory.
const FileName = "ctz.cfg.json"

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file is not an error: every key has a default.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("server.socket", "/tmp/ctz-core.sock")
	viper.SetDefault("server.wsAddr", "")

	setEngineDefaults(engine.DefaultParams())
	viper.SetDefault("engine.priority", []string{})

	for _, kind := range engine.DefaultPriority {
		viper.SetDefault("weights."+string(kind), "1.0")
	}

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config file, using defaults", "dir", configDir)
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

func setEngineDefaults(p engine.Params) {
	viper.SetDefault("engine.pointsPerDamage", p.PointsPerDamage)
	viper.SetDefault("engine.killBonus", p.KillBonus)

	viper.SetDefault("engine.repairKitHeal", p.RepairKitHeal)
	viper.SetDefault("engine.repairKitValue", p.RepairKitValue)
	viper.SetDefault("engine.pickupBonus", p.PickupBonus)
	viper.SetDefault("engine.shieldPickupValue", p.ShieldPickupValue)
	viper.SetDefault("engine.sameWeaponValue", p.SameWeaponValue)

	viper.SetDefault("engine.captureBonus", p.CaptureBonus)
	viper.SetDefault("engine.neutralizeBonus", p.NeutralizeBonus)
	viper.SetDefault("engine.mainframeBonus", p.MainframeBonus)
	viper.SetDefault("engine.defendBonus", p.DefendBonus)
	viper.SetDefault("engine.defendRadius", p.DefendRadius)
	viper.SetDefault("engine.guardRadius", p.GuardRadius)
	viper.SetDefault("engine.holdRadius", p.HoldRadius)
	viper.SetDefault("engine.distanceExponent", p.DistanceExponent)
	viper.SetDefault("engine.rushExponent", p.RushExponent)

	viper.SetDefault("engine.assistPerDamage", p.AssistPerDamage)
	viper.SetDefault("engine.assistMinDistance", p.AssistMinDistance)
	viper.SetDefault("engine.groupingBonus", p.GroupingBonus)
	viper.SetDefault("engine.groupingDistance", p.GroupingDistance)

	viper.SetDefault("engine.shootMainframeMultiplier", p.ShootMainframeMultiplier)
	viper.SetDefault("engine.shieldMainframeMultiplier", p.ShieldMainframeMultiplier)
	viper.SetDefault("engine.holdingMultiplier", p.HoldingMultiplier)
}

// EngineParams returns the configured engine tuning, clamped to sane ranges.
func EngineParams() engine.Params {
	p := engine.Params{
		PointsPerDamage: viper.GetInt("engine.pointsPerDamage"),
		KillBonus:       viper.GetInt("engine.killBonus"),

		RepairKitHeal:     viper.GetInt("engine.repairKitHeal"),
		RepairKitValue:    viper.GetInt("engine.repairKitValue"),
		PickupBonus:       viper.GetInt("engine.pickupBonus"),
		ShieldPickupValue: viper.GetInt("engine.shieldPickupValue"),
		SameWeaponValue:   viper.GetInt("engine.sameWeaponValue"),

		CaptureBonus:     viper.GetInt("engine.captureBonus"),
		NeutralizeBonus:  viper.GetInt("engine.neutralizeBonus"),
		MainframeBonus:   viper.GetInt("engine.mainframeBonus"),
		DefendBonus:      viper.GetInt("engine.defendBonus"),
		DefendRadius:     viper.GetInt("engine.defendRadius"),
		GuardRadius:      viper.GetInt("engine.guardRadius"),
		HoldRadius:       viper.GetInt("engine.holdRadius"),
		DistanceExponent: viper.GetFloat64("engine.distanceExponent"),
		RushExponent:     viper.GetFloat64("engine.rushExponent"),

		AssistPerDamage:   viper.GetInt("engine.assistPerDamage"),
		AssistMinDistance: viper.GetInt("engine.assistMinDistance"),
		GroupingBonus:     viper.GetInt("engine.groupingBonus"),
		GroupingDistance:  viper.GetInt("engine.groupingDistance"),

		ShootMainframeMultiplier:  viper.GetFloat64("engine.shootMainframeMultiplier"),
		ShieldMainframeMultiplier: viper.GetFloat64("engine.shieldMainframeMultiplier"),
		HoldingMultiplier:         viper.GetFloat64("engine.holdingMultiplier"),
	}
	p.WeaponUpgrades = weaponUpgrades()
	p.Validate()
	return p
}

// weaponUpgrades overlays engine.weaponUpgrades on the stock table, so a
// config file only needs the entries it changes. Keys are weapon type names.
func weaponUpgrades() map[model.WeaponType]map[model.WeaponType]int {
	table := engine.DefaultWeaponUpgrades()
	var overrides map[string]map[string]int
	if err := viper.UnmarshalKey("engine.weaponUpgrades", &overrides); err != nil {
		slog.Warn("ignoring malformed engine.weaponUpgrades", "error", err)
		return table
	}
	for current, offers := range overrides {
		row, ok := table[model.WeaponType(current)]
		if !ok {
			row = make(map[model.WeaponType]int, len(offers))
			table[model.WeaponType(current)] = row
		}
		for offered, v := range offers {
			row[model.WeaponType(offered)] = v
		}
	}
	return table
}

// Weights compiles the per-action weight expressions.
func Weights() (*engine.Weights, error) {
	sources := make(map[engine.ActionKind]string)
	for _, kind := range engine.DefaultPriority {
		sources[kind] = viper.GetString("weights." + string(kind))
	}
	return engine.NewWeights(sources)
}

// Priority returns the configured tie-break order.
func Priority() (engine.Priority, error) {
	return engine.ParsePriority(viper.GetStringSlice("engine.priority"))
}

// PlannerOptions bundles everything a planner needs from config.
func PlannerOptions() ([]engine.Option, error) {
	w, err := Weights()
	if err != nil {
		return nil, err
	}
	prio, err := Priority()
	if err != nil {
		return nil, err
	}
	return []engine.Option{
		engine.WithParams(EngineParams()),
		engine.WithWeights(w),
		engine.WithPriority(prio),
	}, nil
}

// Server holds the listener settings.
type Server struct {
	Socket        string `json:"socket" mapstructure:"socket"`
	WebsocketAddr string `json:"wsAddr" mapstructure:"wsAddr"`
}

// ServerConfig returns where to listen for harness connections. An empty
// WebsocketAddr disables the websocket listener.
func ServerConfig() Server {
	return Server{
		Socket:        viper.GetString("server.socket"),
		WebsocketAddr: viper.GetString("server.wsAddr"),
	}
}

// LogLevel parses logLevel, falling back to info.
func LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(viper.GetString("logLevel")))); err != nil {
		return slog.LevelInfo
	}
	return level
}
