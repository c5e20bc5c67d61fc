package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataFileName   = "tasks.json"
	DefaultLogFileName    = "taskpad.log"
	appDirName            = "taskpad"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Help       string `toml:"help"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Edit       string `toml:"edit"`
	Delete     string `toml:"delete"`
	MoveToTop  string `toml:"move_to_top"`
	ShowDone   string `toml:"show_done"`
	CycleCat   string `toml:"cycle_category"`
	CycleSort  string `toml:"cycle_sort"`
	Palette    string `toml:"palette"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	NextField  string `toml:"next_field"`
	PrevField  string `toml:"prev_field"`
	Suggest    string `toml:"suggest_title"`
	Categorize string `toml:"categorize"`
}

type Assist struct {
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float64 `toml:"temperature"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	// APIKey comes from the environment only; it is never written to the
	// config file.
	APIKey string `toml:"-"`
}

type Config struct {
	DataFile        string `toml:"data_file"`
	LogFile         string `toml:"log_file"`
	ShowDone        bool   `toml:"show_done"`
	DefaultSort     string `toml:"default_sort"`
	DefaultCategory string `toml:"default_category"`
	Assist          Assist `toml:"assist"`
	Keys            Keymap `toml:"keys"`
}

// DefaultPath places the config under the user config dir, falling back to
// the working directory when that cannot be resolved.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config, writing the defaults first when the file
// does not exist yet. Environment overrides are applied on top either way.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return applyEnv(cfg), err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnv(cfg), err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(cfg), err
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFileName
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("TASKPAD_DATA_FILE")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_MODEL")); v != "" {
		cfg.Assist.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_BASE_URL")); v != "" {
		cfg.Assist.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Assist.TimeoutSeconds = n
		}
	}
	cfg.Assist.APIKey = strings.TrimSpace(os.Getenv("TASKPAD_API_KEY"))
	if cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = strings.TrimSpace(os.Getenv("PERPLEXITY_API_KEY"))
	}
	return cfg
}

func write(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default is the built-in configuration, also written out on first launch.
func Default() Config {
	return Config{
		DataFile:        DefaultDataFileName,
		LogFile:         DefaultLogFileName,
		ShowDone:        true,
		DefaultSort:     "created",
		DefaultCategory: "all",
		Assist: Assist{
			BaseURL:        "https://api.perplexity.ai",
			Model:          "sonar-pro",
			TimeoutSeconds: 30,
		},
		Keys: Keymap{
			Quit:       "q",
			Help:       "?",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Edit:       "e",
			Delete:     "d",
			MoveToTop:  "t",
			ShowDone:   "v",
			CycleCat:   "c",
			CycleSort:  "s",
			Palette:    "/",
			Confirm:    "enter",
			Cancel:     "esc",
			NextField:  "tab",
			PrevField:  "shift+tab",
			Suggest:    "ctrl+s",
			Categorize: "ctrl+g",
		},
	}
}
