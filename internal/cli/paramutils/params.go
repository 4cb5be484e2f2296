package paramutils

import (
	"os"
	"strconv"
	"time"

	"ghactivity/internal/configutils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"
	"ghactivity/internal/logging"
	"ghactivity/internal/pkg/github"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type FlagRepo interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
}

func NewFlagRepo(flags *pflag.FlagSet) FlagRepo {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

// Settings is everything a command needs besides its own flags.
type Settings struct {
	Config *configutils.Config
	// Reference is the instant relative times are computed against; zero
	// means the wall clock.
	Reference time.Time
	Sort      activity.SortOrder
}

// ReferenceOrNow resolves the reference time for one rendering pass.
func (s *Settings) ReferenceOrNow() time.Time {
	if s.Reference.IsZero() {
		return timeNow()
	}

	return s.Reference
}

var timeNow = time.Now

var loadViper = func(configPath string) (*viper.Viper, error) {
	if configPath != "" {
		return configutils.LoadFile(configPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return configutils.LoadConfigForPath(wd)
}

var initLogging = func(level string) error {
	return logging.Initialize(os.Stderr, level)
}

var newSource = func(path string) activity.Source {
	return github.NewDataset(path)
}

// LoadSettings merges configuration files with flag overrides and sets up
// logging.
func LoadSettings(flags FlagRepo) (*Settings, error) {
	v, err := loadViper(flags.GetStringOrDefault("config", ""))
	if err != nil {
		return nil, err
	}

	cfg := configutils.FromViper(v)
	cfg.Dataset = flags.GetStringOrDefault("dataset", cfg.Dataset)
	cfg.LogLevel = flags.GetStringOrDefault("log-level", cfg.LogLevel)
	cfg.Sort = flags.GetStringOrDefault("sort", cfg.Sort)
	cfg.Title = flags.GetStringOrDefault("title", cfg.Title)

	err = initLogging(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ref, err := ParseReference(flags.GetStringOrDefault("now", ""))
	if err != nil {
		return nil, err
	}

	order, ok := activity.ParseSortOrder(cfg.Sort)
	if !ok {
		return nil, errcodes.ErrInvalidSortOrder
	}

	return &Settings{
		Config:    cfg,
		Reference: ref,
		Sort:      order,
	}, nil
}

// ParseReference accepts an RFC 3339 timestamp or an empty string.
func ParseReference(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrap(errcodes.ErrInvalidReferenceTime, s)
	}

	return t, nil
}

// LoadActivities reads the configured dataset in display order.
func LoadActivities(s *Settings) (activity.List, error) {
	activities, err := newSource(s.Config.Dataset).Load()
	if err != nil {
		return nil, err
	}

	return activity.List(activities).Sorted(s.Sort), nil
}

// ParseActivityRef parses "42" or "owner/repo#42".
func ParseActivityRef(arg string) (repository string, number int64, err error) {
	ref := arg
	for i := len(arg) - 1; i >= 0; i-- {
		if arg[i] == '#' {
			repository, ref = arg[:i], arg[i+1:]
			break
		}
	}

	number, err = strconv.ParseInt(ref, 10, 64)
	if err != nil || number <= 0 {
		return "", 0, errors.Wrap(errcodes.ErrActivityNotFound, arg)
	}

	return repository, number, nil
}

// FindActivity looks up an activity by number, optionally restricted to a
// repository in owner/name form.
func FindActivity(l activity.List, arg string) (*activity.Entity, error) {
	repository, number, err := ParseActivityRef(arg)
	if err != nil {
		return nil, err
	}

	if repository == "" {
		if a, ok := l.FindByNumber(number); ok {
			return a, nil
		}
		return nil, errors.Wrap(errcodes.ErrActivityNotFound, arg)
	}

	for _, a := range l {
		if a.Number == number && a.Repository.FullName() == repository {
			return a, nil
		}
	}

	return nil, errors.Wrap(errcodes.ErrActivityNotFound, arg)
}

func ParseIDArg(args []string) string {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	return id
}
