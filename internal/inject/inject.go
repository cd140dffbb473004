// Package inject applies an update plan, either by writing a script for
// the calling shell or by updating this process before starting a child.
package inject

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"envprof/internal/model"
)

// Injector receives one call per planned variable.
type Injector interface {
	Set(name, value string) error
	Unset(name string) error
}

// Apply hands every variable of plan to inj, in name order. Values are
// joined with the platform path-list separator; a variable whose final
// value is empty is unset.
func Apply(plan *model.UpdatePlan, inj Injector) error {
	sep := string(os.PathListSeparator)
	for _, entry := range plan.Entries() {
		var err error
		if len(entry.Values) == 0 {
			log.Debug().Str("variable", entry.Name).Msg("unsetting")
			err = inj.Unset(entry.Name)
		} else {
			value := entry.Join(sep)
			log.Debug().Str("variable", entry.Name).Int("values", len(entry.Values)).Msg("setting")
			err = inj.Set(entry.Name, value)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to update %s", entry.Name)
		}
	}
	return nil
}

// ScriptInjector writes shell statements, one per line. Names that are not
// plain identifiers are rejected rather than written into the script.
type ScriptInjector struct {
	w     io.Writer
	shell Shell
}

func NewScriptInjector(w io.Writer, shell Shell) *ScriptInjector {
	return &ScriptInjector{w: w, shell: shell}
}

func (s *ScriptInjector) Set(name, value string) error {
	if !model.ValidName(name) {
		return errors.Errorf("refusing to write invalid variable name %q", name)
	}
	_, err := fmt.Fprintln(s.w, s.shell.Set(name, value))
	return err
}

func (s *ScriptInjector) Unset(name string) error {
	if !model.ValidName(name) {
		return errors.Errorf("refusing to write invalid variable name %q", name)
	}
	_, err := fmt.Fprintln(s.w, s.shell.Unset(name))
	return err
}

// ProcessInjector updates the environment of the current process, which
// child processes then inherit.
type ProcessInjector struct{}

func (ProcessInjector) Set(name, value string) error {
	return os.Setenv(name, value)
}

func (ProcessInjector) Unset(name string) error {
	return os.Unsetenv(name)
}
