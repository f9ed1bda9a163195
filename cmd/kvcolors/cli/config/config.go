package config

// DefaultTheme is the Kvantum theme kvcolors writes to by default.
const DefaultTheme = "MaterialAdw"

// Config represents the kvcolors CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Theme       string   `mapstructure:"theme"`
	Stylesheet  string   `mapstructure:"stylesheet"`
	KVConfig    string   `mapstructure:"kvconfig"`
	Mappings    []string `mapstructure:"mappings"`
	AllowedDirs []string `mapstructure:"allowed-dirs"`
}
