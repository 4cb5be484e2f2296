package configutils

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"ghactivity/internal/pkg/fs"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	globalConfigDir = "~/.config/ghactivity"
	localConfigFile = ".ghactivitycfg"
)

type FlagSet interface {
	GetString(string) (string, error)
	GetBool(string) (bool, error)
}

type configMerger interface {
	MergeConfig(io.Reader) error
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var filetypes = []string{"yaml", "json", "toml"}

// Config is the resolved configuration of a single run.
type Config struct {
	Dataset       string
	Title         string
	MaxWidth      int
	AvatarSize    int
	LogLevel      string
	WatchInterval time.Duration
	Sort          string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset", "activity.json")
	v.SetDefault("title", "Recent Activity")
	v.SetDefault("page.max_width", 960)
	v.SetDefault("page.avatar_size", 48)
	v.SetDefault("log.level", "warn")
	v.SetDefault("watch.interval", time.Minute)
	v.SetDefault("sort", "none")
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Dataset:       v.GetString("dataset"),
		Title:         v.GetString("title"),
		MaxWidth:      v.GetInt("page.max_width"),
		AvatarSize:    v.GetInt("page.avatar_size"),
		LogLevel:      v.GetString("log.level"),
		WatchInterval: v.GetDuration("watch.interval"),
		Sort:          v.GetString("sort"),
	}
}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	err := cm.MergeConfig(in)
	if err != nil {
		return err
	}

	return nil
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.ReadCloser, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, v *viper.Viper) error {
	f, err := loadFile(filename, fs.OS{})
	if err != nil {
		return err
	}
	defer f.Close()

	return mergeConfig(f, v)
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand(globalConfigDir)
}

// tryFiletypes merges the first of the candidate files that parses.
func tryFiletypes(v *viper.Viper, candidate func(ft string) string) error {
	var err error
	for _, ft := range filetypes {
		v.SetConfigType(ft)
		err = loadConfig(candidate(ft), v)
		if err == nil {
			return nil
		}
		log.Debug().
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return err
}

func DefaultConfig() (*viper.Viper, error) {
	cfgDir, err := getGlobalConfigDir()
	if err != nil {
		return nil, ErrHomeDirNotFound
	}

	v := viper.New()
	SetDefaults(v)

	err = tryFiletypes(v, func(ft string) string {
		return filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
	})
	if err != nil {
		log.Debug().Err(err).Msg("no global config, using defaults")
	}

	return v, nil
}

func MergeLocalConfig(v *viper.Viper, path string) error {
	f := filepath.Join(path, localConfigFile)
	if fileExists(f, fs.OS{}) != nil {
		return nil
	}

	err := tryFiletypes(v, func(string) string { return f })
	if err != nil {
		return errors.Wrapf(err, "could not load %s", f)
	}

	return nil
}

func LoadConfigForPath(path string) (*viper.Viper, error) {
	v, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	err = MergeLocalConfig(v, path)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// LoadFile loads defaults plus the single file at path. The file type is
// taken from the extension when it is a known one.
func LoadFile(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, ft := range filetypes {
		if ft == ext {
			v.SetConfigType(ft)
			err := loadConfig(path, v)
			if err != nil {
				return nil, errors.Wrap(err, "could not load config")
			}
			return v, nil
		}
	}

	err := tryFiletypes(v, func(string) string { return path })
	if err != nil {
		return nil, errors.Wrap(err, "could not load config")
	}

	return v, nil
}

func GetBoolFlagOrDefault(fs FlagSet, flag string, d bool) bool {
	v, err := fs.GetBool(flag)
	if err != nil {
		return d
	}

	return v
}

func GetStringFlagOrDefault(fs FlagSet, flag, d string) string {
	s, err := fs.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}
