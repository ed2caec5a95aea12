package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Raghav-2611/saanjha/internal/fileutil"
)

const completionMarker = "saanjha completion"

// shellSetup says where a shell keeps its startup file (relative to the home
// directory) and which line loads saanjha's completions.
type shellSetup struct {
	rcFile   string
	evalLine string
}

var shellSetups = map[string]shellSetup{
	"bash":       {".bashrc", `eval "$(saanjha completion generate bash)"`},
	"zsh":        {".zshrc", `eval "$(saanjha completion generate zsh)"`},
	"fish":       {".config/fish/config.fish", `saanjha completion generate fish | source`},
	"powershell": {".config/powershell/Microsoft.PowerShell_profile.ps1", `saanjha completion generate powershell | Out-String | Invoke-Expression`},
}

// detectShell maps $SHELL to one of the supported shell names, or "".
func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	}
	return ""
}

func shellRCPath(shell, homeDir string) (string, bool) {
	s, ok := shellSetups[shell]
	if !ok {
		return "", false
	}
	return filepath.Join(homeDir, s.rcFile), true
}

// isCompletionInstalled reports whether the shell's startup file already loads completions.
func isCompletionInstalled(shell, homeDir string) bool {
	path, ok := shellRCPath(shell, homeDir)
	if !ok {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), completionMarker)
}

// installCompletion adds the completion line to the shell's startup file,
// keeping its existing contents and mode. Already installed is not an error.
func installCompletion(shell, homeDir string) error {
	s, ok := shellSetups[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	path := filepath.Join(homeDir, s.rcFile)

	perm := fs.FileMode(0o644)
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if strings.Contains(string(existing), completionMarker) {
			return nil
		}
		if info, statErr := os.Stat(path); statErr == nil {
			perm = info.Mode().Perm()
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return err
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n# saanjha shell completion\n%s\n", s.evalLine)

	return fileutil.WriteAtomic(path, []byte(b.String()), perm)
}
