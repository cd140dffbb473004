package inject

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Shell renders environment assignments in one shell's syntax.
type Shell interface {
	Name() string
	Set(name, value string) string
	Unset(name string) string
}

// PosixShell implements Shell for sh, bash and zsh.
type PosixShell struct {
	name string
}

func (s *PosixShell) Name() string {
	if s.name == "" {
		return "sh"
	}
	return s.name
}

func (s *PosixShell) Set(name, value string) string {
	return "export " + name + "=" + posixQuote(value)
}

func (s *PosixShell) Unset(name string) string {
	return "unset " + name
}

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// FishShell implements Shell for fish. Fish stores *PATH variables as
// lists, so their values are passed as separate words.
type FishShell struct{}

func (s *FishShell) Name() string {
	return "fish"
}

func (s *FishShell) Set(name, value string) string {
	if !strings.HasSuffix(name, "PATH") {
		return "set -gx " + name + " " + fishQuote(value)
	}
	parts := filepath.SplitList(value)
	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = fishQuote(p)
	}
	return strings.TrimSpace("set -gx " + name + " " + strings.Join(words, " "))
}

func (s *FishShell) Unset(name string) string {
	return "set -e " + name
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// PowerShell implements Shell for Windows PowerShell and pwsh.
type PowerShell struct{}

func (s *PowerShell) Name() string {
	return "powershell"
}

func (s *PowerShell) Set(name, value string) string {
	return "$env:" + name + " = '" + strings.ReplaceAll(value, "'", "''") + "'"
}

func (s *PowerShell) Unset(name string) string {
	return "Remove-Item Env:" + name + " -ErrorAction SilentlyContinue"
}

// CmdShell implements Shell for cmd.exe batch files. Output is meant to be
// saved as a .bat or .cmd file and called.
type CmdShell struct{}

func (s *CmdShell) Name() string {
	return "cmd"
}

func (s *CmdShell) Set(name, value string) string {
	return "set " + name + "=" + cmdEscaper.Replace(value)
}

// cmdEscaper quotes a value for a batch file: percent signs are doubled
// and the remaining metacharacters take a caret.
var cmdEscaper = strings.NewReplacer(
	"%", "%%",
	"^", "^^",
	"&", "^&",
	"|", "^|",
	"<", "^<",
	">", "^>",
	"(", "^(",
	")", "^)",
	`"`, `^"`,
)

func (s *CmdShell) Unset(name string) string {
	return "set " + name + "="
}

// ShellByName returns the dialect registered under name.
func ShellByName(name string) (Shell, error) {
	switch strings.ToLower(name) {
	case "sh", "bash", "zsh", "dash", "ksh":
		return &PosixShell{name: strings.ToLower(name)}, nil
	case "fish":
		return &FishShell{}, nil
	case "powershell", "pwsh":
		return &PowerShell{}, nil
	case "cmd":
		return &CmdShell{}, nil
	}
	return nil, errors.Errorf("unsupported shell %q (want sh, bash, zsh, fish, powershell or cmd)", name)
}

// DetectShell identifies the user's shell from a path such as $SHELL.
// Unknown shells and an empty path fall back to POSIX syntax.
func DetectShell(shellPath string) Shell {
	base := strings.ToLower(filepath.Base(shellPath))
	base = strings.TrimSuffix(base, ".exe")
	if shell, err := ShellByName(base); err == nil {
		return shell
	}
	return &PosixShell{}
}
