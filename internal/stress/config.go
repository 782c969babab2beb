package stress

import "github.com/pkg/errors"

var ErrInvalidConfig = errors.New("invalid stress config")

type Config struct {
	Writers  int    `yaml:"writers"`
	Readers  int    `yaml:"readers"`
	Ops      int    `yaml:"ops"`
	KeySpace int    `yaml:"keySpace"`
	Seed     uint64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Writers:  8,
		Readers:  4,
		Ops:      10_000,
		KeySpace: 256,
		Seed:     1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Writers < 1:
		return errors.Wrapf(ErrInvalidConfig, "writers should be at least 1, got %d", c.Writers)
	case c.Readers < 0:
		return errors.Wrapf(ErrInvalidConfig, "readers should not be negative, got %d", c.Readers)
	case c.Ops < 1:
		return errors.Wrapf(ErrInvalidConfig, "ops should be at least 1, got %d", c.Ops)
	case c.KeySpace < 1:
		return errors.Wrapf(ErrInvalidConfig, "key space should be at least 1, got %d", c.KeySpace)
	}
	return nil
}
