package app

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/osutil"
	"github.com/ayoisaiah/discipline/internal/pathutil"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editorCommand splits the editor setting, which may carry arguments
// (e.g. "code --wait"), and appends the file to open.
func editorCommand(editor, path string) ([]string, error) {
	args, err := shellquote.Split(editor)
	if err != nil {
		return nil, err
	}

	return append(args, path), nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := pathutil.Must().ConfigFilePath()

	args := []string{editor, path}

	if editor != defaultEditor {
		split, err := editorCommand(editor, path)
		if err == nil && len(split) > 1 {
			args = split
		}
	}

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
