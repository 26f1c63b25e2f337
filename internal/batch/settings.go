package batch

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Settings describes one batch of LCP queries.
type Settings struct {
	TextOne string `toml:"text-one"`
	TextTwo string `toml:"text-two"`
	Pairs   string `toml:"pairs"`
	Output  string `toml:"output"`
	Fold    bool   `toml:"fold"`
	Verbose bool   `toml:"verbose"`
}

func LoadSettings(path string) (Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "%s is not a valid toml config file", path)
	}
	return s, nil
}

// Validate checks that every input file is named.
func (s Settings) Validate() error {
	switch {
	case s.TextOne == "":
		return errors.New("missing first text file")
	case s.TextTwo == "":
		return errors.New("missing second text file")
	case s.Pairs == "":
		return errors.New("missing pair file")
	}
	return nil
}
