package config

import (
	"os"
	"strconv"
	"time"
)

// Settings are the runtime knobs that may be overridden from the environment.
type Settings struct {
	AssetDir string
	Seed     int64
	Mute     bool
	Volume   float64 // 0.0 - 1.0
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// DefaultSettings returns settings with a time based seed.
func DefaultSettings() Settings {
	return Settings{
		AssetDir: ".",
		Seed:     time.Now().UnixNano(),
		Volume:   0.5,
	}
}

// LoadSettings reads BLACKHOLE_* variables on top of the defaults.
// Values that fail to parse are ignored.
func LoadSettings() Settings {
	s := DefaultSettings()

	s.AssetDir = GetEnv("BLACKHOLE_ASSETS", s.AssetDir)

	if seed := os.Getenv("BLACKHOLE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			s.Seed = val
		}
	}

	if mute := os.Getenv("BLACKHOLE_MUTE"); mute != "" {
		if val, err := strconv.ParseBool(mute); err == nil {
			s.Mute = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("BLACKHOLE_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			s.Volume = float64(val) / 100.0
			if s.Volume < 0 {
				s.Volume = 0
			}
			if s.Volume > 1 {
				s.Volume = 1
			}
		}
	}

	return s
}
