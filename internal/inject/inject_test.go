package inject

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envprof/internal/model"
)

type call struct {
	op, name, value string
}

type recorder struct {
	calls []call
	fail  string
}

func (r *recorder) Set(name, value string) error {
	if name == r.fail {
		return errors.New("boom")
	}
	r.calls = append(r.calls, call{"set", name, value})
	return nil
}

func (r *recorder) Unset(name string) error {
	if name == r.fail {
		return errors.New("boom")
	}
	r.calls = append(r.calls, call{"unset", name, ""})
	return nil
}

func samplePlan() *model.UpdatePlan {
	plan := model.NewUpdatePlan()
	plan.Set("PATH", model.NewPathSet("/opt/bin", "/usr/bin"))
	plan.Set("CDPATH", model.NewPathSet())
	plan.Set("MANPATH", model.NewPathSet("/opt/man"))
	return plan
}

func TestApply_OneCallPerVariableInNameOrder(t *testing.T) {
	sep := string(os.PathListSeparator)
	rec := &recorder{}

	require.NoError(t, Apply(samplePlan(), rec))

	assert.Equal(t, []call{
		{"unset", "CDPATH", ""},
		{"set", "MANPATH", "/opt/man"},
		{"set", "PATH", "/opt/bin" + sep + "/usr/bin"},
	}, rec.calls)
}

func TestApply_EmptyPlan_NoCalls(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, Apply(model.NewUpdatePlan(), rec))
	assert.Empty(t, rec.calls)
}

func TestApply_StopsOnFirstError(t *testing.T) {
	rec := &recorder{fail: "MANPATH"}

	err := Apply(samplePlan(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update MANPATH")
	assert.Len(t, rec.calls, 1)
}

func TestScriptInjector_WritesOneLinePerVariable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Apply(samplePlan(), NewScriptInjector(&buf, &PosixShell{})))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "unset CDPATH", lines[0])
	assert.Equal(t, "export MANPATH='/opt/man'", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "export PATH='/opt/bin"))
}

func TestScriptInjector_RejectsInvalidNames(t *testing.T) {
	var buf bytes.Buffer
	inj := NewScriptInjector(&buf, &PosixShell{})

	for _, name := range []string{"X; touch /tmp/owned #", "BAD NAME", "1PATH", ""} {
		assert.Error(t, inj.Set(name, "/a"), name)
		assert.Error(t, inj.Unset(name), name)
	}
	assert.Empty(t, buf.String())

	plan := model.NewUpdatePlan()
	plan.Set("BAD NAME", model.NewPathSet("/b"))
	err := Apply(plan, inj)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid variable name")
	assert.Empty(t, buf.String())
}

func TestProcessInjector_UpdatesEnvironment(t *testing.T) {
	t.Setenv("ENVPROF_INJECT_SET", "old")
	t.Setenv("ENVPROF_INJECT_UNSET", "old")

	plan := model.NewUpdatePlan()
	plan.Set("ENVPROF_INJECT_SET", model.NewPathSet("/new"))
	plan.Set("ENVPROF_INJECT_UNSET", model.NewPathSet())

	require.NoError(t, Apply(plan, ProcessInjector{}))

	assert.Equal(t, "/new", os.Getenv("ENVPROF_INJECT_SET"))
	_, ok := os.LookupEnv("ENVPROF_INJECT_UNSET")
	assert.False(t, ok)
}

func TestCommand_NoArgs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	_, err := Command(ctx, model.NewUpdatePlan(), nil)
	require.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("not started")))
}
