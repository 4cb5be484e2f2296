package configutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ghactivity/internal/pkg/fs"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConfigMerger struct {
	err error
}

func (m *mockConfigMerger) MergeConfig(in io.Reader) error {
	return m.err
}

type mockFlagSet struct {
	value     string
	boolValue bool
	err       error
}

func (m *mockFlagSet) GetString(f string) (string, error) {
	return m.value, m.err
}

func (m *mockFlagSet) GetBool(f string) (bool, error) {
	return m.boolValue, m.err
}

func Test_mergeConfig(t *testing.T) {
	t.Run("returns nil when merge succeeds", func(t *testing.T) {
		err := mergeConfig(nil, &mockConfigMerger{nil})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error when merge fails", func(t *testing.T) {
		vErr := errors.New("mergeFailed")
		err := mergeConfig(nil, &mockConfigMerger{vErr})
		assert.EqualError(t, err, vErr.Error())
	})
}

func Test_fileExists(t *testing.T) {
	t.Run("returns nil if file exists", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Info: fs.MockFileInfo{IsDirValue: false}})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error if file does not exists", func(t *testing.T) {
		vErr := errors.New("file does not exist")
		err := fileExists("", fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("returns error if file is a directory", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Info: fs.MockFileInfo{IsDirValue: true}})
		assert.EqualError(t, err, ErrConfigFileIsDir.Error())
	})
}

func Test_loadFile(t *testing.T) {
	oldFileExists := fileExists

	t.Run("fails if file does not exist", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return vErr }
		_, err := loadFile("", nil)
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails if file cannot be opened", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("", fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("succeeds if file exists and can be opened", func(t *testing.T) {
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("cfg", fs.MockFS{Files: map[string]string{"cfg": ""}})
		assert.Equal(t, nil, err)
	})

	fileExists = oldFileExists
}

func TestDefaultConfig(t *testing.T) {
	oldGetGlobalConfigDir := getGlobalConfigDir

	t.Run("fails without a home directory", func(t *testing.T) {
		getGlobalConfigDir = func() (string, error) { return "", errors.New("") }
		_, err := DefaultConfig()
		assert.EqualError(t, err, ErrHomeDirNotFound.Error())
	})

	t.Run("falls back to defaults without a config file", func(t *testing.T) {
		getGlobalConfigDir = func() (string, error) { return t.TempDir(), nil }
		v, err := DefaultConfig()
		require.NoError(t, err)

		cfg := FromViper(v)
		assert.Equal(t, "activity.json", cfg.Dataset)
		assert.Equal(t, "Recent Activity", cfg.Title)
		assert.Equal(t, 960, cfg.MaxWidth)
		assert.Equal(t, 48, cfg.AvatarSize)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, time.Minute, cfg.WatchInterval)
		assert.Equal(t, "none", cfg.Sort)
	})

	t.Run("merges the global config", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.toml"), "title = \"Octocat's Activity\"\n[page]\nmax_width = 720\n")
		getGlobalConfigDir = func() (string, error) { return dir, nil }

		v, err := DefaultConfig()
		require.NoError(t, err)

		cfg := FromViper(v)
		assert.Equal(t, "Octocat's Activity", cfg.Title)
		assert.Equal(t, 720, cfg.MaxWidth)
		assert.Equal(t, 48, cfg.AvatarSize)
	})

	getGlobalConfigDir = oldGetGlobalConfigDir
}

func TestLoadConfigForPath(t *testing.T) {
	oldGetGlobalConfigDir := getGlobalConfigDir
	getGlobalConfigDir = func() (string, error) { return t.TempDir(), nil }

	t.Run("local config overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, localConfigFile), "dataset: data/activity.json\nsort: created\n")

		v, err := LoadConfigForPath(dir)
		require.NoError(t, err)
		assert.Equal(t, "data/activity.json", v.GetString("dataset"))
		assert.Equal(t, "created", v.GetString("sort"))
	})

	t.Run("missing local config is not an error", func(t *testing.T) {
		v, err := LoadConfigForPath(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "activity.json", v.GetString("dataset"))
	})

	getGlobalConfigDir = oldGetGlobalConfigDir
}

func TestLoadFile(t *testing.T) {
	t.Run("uses the extension as config type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		writeFile(t, path, `{"watch": {"interval": "30s"}}`)

		v, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, FromViper(v).WatchInterval)
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("fails for a directory", func(t *testing.T) {
		_, err := LoadFile(t.TempDir())
		assert.Error(t, err)
	})
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("log.level", "debug")

	assert.Equal(t, "debug", FromViper(v).LogLevel)
}

func TestGetStringFlagOrDefault(t *testing.T) {
	t.Run("returns flag value when defined", func(t *testing.T) {
		v := GetStringFlagOrDefault(
			&mockFlagSet{value: "value", err: nil},
			"flag",
			"",
		)
		assert.Equal(t, "value", v)
	})

	t.Run("returns default value on error", func(t *testing.T) {
		v := GetStringFlagOrDefault(
			&mockFlagSet{value: "", err: errors.New("error")},
			"flag",
			"default",
		)
		assert.Equal(t, "default", v)
	})

	t.Run("returns default value on empty string", func(t *testing.T) {
		v := GetStringFlagOrDefault(
			&mockFlagSet{value: "", err: nil},
			"flag",
			"default",
		)
		assert.Equal(t, "default", v)
	})
}

func TestGetBoolFlagOrDefault(t *testing.T) {
	t.Run("returns flag value when defined", func(t *testing.T) {
		v := GetBoolFlagOrDefault(
			&mockFlagSet{boolValue: false, err: nil},
			"flag",
			true,
		)
		assert.Equal(t, false, v)
	})

	t.Run("returns default value on error", func(t *testing.T) {
		v := GetBoolFlagOrDefault(
			&mockFlagSet{boolValue: true, err: errors.New("error")},
			"flag",
			false,
		)
		assert.Equal(t, false, v)
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
