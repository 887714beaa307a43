package settings

import (
	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// KeyBindings maps game actions to key names as the terminal reports
// them. Each action may have several keys bound.
type KeyBindings struct {
	Left     []string `json:"left" mapstructure:"left"`
	Right    []string `json:"right" mapstructure:"right"`
	Rotate   []string `json:"rotate" mapstructure:"rotate"`
	SoftDrop []string `json:"soft_drop" mapstructure:"soft_drop"`
	HardDrop []string `json:"hard_drop" mapstructure:"hard_drop"`
	Hold     []string `json:"hold" mapstructure:"hold"`
	Pause    []string `json:"pause" mapstructure:"pause"`
	Restart  []string `json:"restart" mapstructure:"restart"`
	Quit     []string `json:"quit" mapstructure:"quit"`
}

// DefaultKeyBindings returns the stock key layout.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:     []string{"left", "h"},
		Right:    []string{"right", "l"},
		Rotate:   []string{"up", "x"},
		SoftDrop: []string{"down", "j"},
		HardDrop: []string{" "},
		Hold:     []string{"c"},
		Pause:    []string{"p"},
		Restart:  []string{"r"},
		Quit:     []string{"q", "esc", "ctrl+c"},
	}
}

type Settings struct{}

// ReadSettings loads the settings file from the user config directory,
// creating it on first run. The config-path flag overrides the location.
func ReadSettings() (*Settings, error) {
	configPath := configdir.LocalConfig("blockfall")
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &Settings{}, nil
}

func (s *Settings) SetTheme(name string) error {
	viper.Set("theme", name)
	return viper.WriteConfig()
}

func (s *Settings) GetTheme() string {
	return viper.GetString("theme")
}

func (s *Settings) SetStartLevel(level int) error {
	viper.Set("start_level", level)
	return viper.WriteConfig()
}

func (s *Settings) GetStartLevel() int {
	return viper.GetInt("start_level")
}

// GetKeyBindings returns the stock layout overlaid with whatever the
// settings file binds under "keys".
func (s *Settings) GetKeyBindings() KeyBindings {
	bindings := DefaultKeyBindings()
	raw := viper.Get("keys")
	if raw == nil {
		return bindings
	}
	mapstructure.Decode(raw, &bindings)
	return bindings
}
