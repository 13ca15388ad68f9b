package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	ScratchDirKey = "TANKOBON_SCRATCH_DIR"
	CachePathKey  = "TANKOBON_CACHE_PATH"
	UserAgentKey  = "TANKOBON_USER_AGENT"
	DotenvPathKey = "TANKOBON_DOTENV_PATH"

	defaultUserAgent = "tankobon/1.0"
)

var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// LoadDotenvIfSet loads the dotenv file named by TANKOBON_DOTENV_PATH.
// An unset key is not an error; the tools run fine on defaults.
func LoadDotenvIfSet() error {
	path := os.Getenv(DotenvPathKey)
	if path == "" {
		return nil
	}

	return configer.LoadFromPath(path)
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

// ScratchRoot returns the directory scratch dirs are created under.
func ScratchRoot() string {
	return configer.GetKeyWithDefault(ScratchDirKey, os.TempDir())
}

// CachePath returns the path of the page cache database.
func CachePath() string {
	if path := configer.GetKey(CachePathKey); path != "" {
		return path
	}

	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tankobon", "pages.db")
	}

	return filepath.Join(home, ".cache", "tankobon", "pages.db")
}

func UserAgent() string {
	return configer.GetKeyWithDefault(UserAgentKey, defaultUserAgent)
}
