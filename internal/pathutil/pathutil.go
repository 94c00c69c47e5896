// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "DISCIPLINE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	sessionFileName string
	historyFileName string
	logFileName     string

	// Computed absolute paths
	configFilePath  string
	sessionFilePath string
	historyFilePath string
	logFilePath     string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:       "discipline",
		configFileName:  "config.yml",
		sessionFileName: "session.json",
		historyFileName: "history.db",
		logFileName:     "discipline.log",
	}

	// separate files per environment so that development runs do not touch
	// real data
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.sessionFileName = fmt.Sprintf("session_%s.json", env)
		p.historyFileName = fmt.Sprintf("history_%s.db", env)
		p.logFileName = fmt.Sprintf("discipline_%s.log", env)
	}

	return p
}

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = newPaths(strings.TrimSpace(os.Getenv(envName)))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.sessionFilePath = filepath.Join(dataDir, p.sessionFileName)

	p.historyFilePath = filepath.Join(dataDir, p.historyFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) SessionFilePath() string {
	return p.sessionFilePath
}

func (p *Paths) HistoryFilePath() string {
	return p.historyFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}
