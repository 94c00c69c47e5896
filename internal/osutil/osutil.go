// Package osutil holds platform names, exit codes and file permissions
package osutil

import "io/fs"

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Int returns the exit code as an int for os.Exit.
func (e exitCode) Int() int {
	return int(e)
}

const DirPermission fs.FileMode = 0o755
