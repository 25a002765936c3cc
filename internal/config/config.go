package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 10000000
}

type I2C struct {
	Dev string `yaml:"dev"` // e.g. /dev/i2c-1
}

type Preview struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"` // e.g. :8080
}

type Config struct {
	Driver      string `yaml:"driver"` // "max7219" | "ssd1306" | "term"
	Width       int    `yaml:"width"`  // pixels, multiple of 8
	Height      int    `yaml:"height"` // pixels, multiple of 8
	Orientation int    `yaml:"block_orientation"`
	Contrast    int    `yaml:"contrast"` // 0..255
	TickMs      int    `yaml:"tick_ms"`
	Seed        int64  `yaml:"seed"` // 0 seeds from the clock

	SPI     SPI     `yaml:"spi,omitempty"`
	I2C     I2C     `yaml:"i2c,omitempty"`
	Preview Preview `yaml:"preview,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
