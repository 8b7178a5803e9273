package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// StdStream selects stdout as the quote destination.
const StdStream = "-"

// Config holds the quote tool configuration, loadable from environment
// variables (BASKET_ prefix), flags, or YAML config files.
type Config struct {
	Input  string `usage:"Path to the basket YAML document (BASKET_INPUT)" flag:"input"`
	Output string `default:"-" usage:"Quote output path, - for stdout" flag:"output"`
	Pretty bool   `default:"false" usage:"Indent the JSON quote" flag:"pretty"`
}

// LoadConfig loads configuration from the process environment, command-line
// flags and YAML config files.
func LoadConfig() (*Config, error) {
	return loadConfig(nil)
}

// loadConfig parses args instead of os.Args when args is non-nil.
func loadConfig(args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "BASKET",
		Args:      args,
		Files:     []string{"basket-quote.yaml", "/etc/kart-basket/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.Input == "" {
		return nil, errors.New("input document is required: set --input or BASKET_INPUT")
	}

	return &cfg, nil
}
