package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
)

// Speed limits in milliseconds per tick.
const (
	MinSpeed  = 50
	MaxSpeed  = 500
	SpeedStep = 10
)

var (
	ErrInvalidSpeed = errors.New("speed out of range")
	ErrUnknownFont  = errors.New("unknown font")
)

// GameConfig is owned by the UI layer; the game core only reads it.
type GameConfig struct {
	Speed              int    `json:"speed"`
	FontFamily         string `json:"fontFamily"`
	HeadImageURL       string `json:"headImageUrl"`
	BodyImageURL       string `json:"bodyImageUrl"`
	GrainImageURL      string `json:"grainImageUrl"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
	MusicURL           string `json:"musicUrl"`
	MusicOn            bool   `json:"isMusicOn"`
}

type Font struct {
	Name  string
	Value string
}

var Fonts = []Font{
	{Name: "TWK Burns Regular", Value: "'TWKBurns-Regular', sans-serif"},
	{Name: "TWK Burns ExtraBold", Value: "'TWKBurns-ExtraBold', sans-serif"},
	{Name: "TWK Burns ExtraLight", Value: "'TWKBurns-ExtraLight', sans-serif"},
}

const assetBase = "https://raw.githubusercontent.com/Nicolas-de-Wolff/CanEat-For-Ever_assets/main/"

func Default() GameConfig {
	return GameConfig{
		Speed:              150,
		FontFamily:         Fonts[0].Value,
		HeadImageURL:       assetBase + "image/Cannette-Kombucha-orange.png",
		BodyImageURL:       assetBase + "image/Cannette-Kombucha-orange.png",
		GrainImageURL:      assetBase + "image/Scoby.png",
		BackgroundImageURL: assetBase + "image/fond.png",
		MusicURL:           assetBase + "Music/Cover%20Megaman%204%20Dr%20Cossack%20Stage%203%20%26%204.mp3",
		MusicOn:            true,
	}
}

// Load reads a JSON file over the defaults. Missing keys keep their default.
func Load(path string) (GameConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BindFlags registers overrides for every field on fs.
func BindFlags(fs *flag.FlagSet, cfg *GameConfig) {
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Tick interval in milliseconds (lower = faster)")
	fs.StringVar(&cfg.FontFamily, "font", cfg.FontFamily, "Font family used by the score header")
	fs.StringVar(&cfg.HeadImageURL, "head", cfg.HeadImageURL, "Head sprite URL or file path")
	fs.StringVar(&cfg.BodyImageURL, "body", cfg.BodyImageURL, "Body sprite URL or file path")
	fs.StringVar(&cfg.GrainImageURL, "grain", cfg.GrainImageURL, "Food sprite URL or file path")
	fs.StringVar(&cfg.BackgroundImageURL, "background", cfg.BackgroundImageURL, "Background image URL or file path")
	fs.StringVar(&cfg.MusicURL, "music", cfg.MusicURL, "Music (mp3) URL or file path")
	fs.BoolVar(&cfg.MusicOn, "music-on", cfg.MusicOn, "Play music while a round runs")
}

func (c GameConfig) Validate() error {
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSpeed, c.Speed, MinSpeed, MaxSpeed)
	}
	for _, f := range Fonts {
		if f.Value == c.FontFamily {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFont, c.FontFamily)
}

// ClampSpeed keeps a runtime speed change inside the allowed range.
func ClampSpeed(ms int) int {
	return max(MinSpeed, min(MaxSpeed, ms))
}

// FontName returns the display name for the configured font family.
func (c GameConfig) FontName() string {
	for _, f := range Fonts {
		if f.Value == c.FontFamily {
			return f.Name
		}
	}
	return c.FontFamily
}
