package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envprof/internal/profile"
)

func TestSetup_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup(&buf, false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	Setup(&buf, true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	log.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWarnings_LogsKeyAndProfile(t *testing.T) {
	table, err := profile.ParseTOML([]byte(`
colour = "blue"

[[profile]]
name = "dev"
flavour = "mint"
`))
	require.NoError(t, err)
	require.Len(t, table.Warnings(), 2)

	var buf bytes.Buffer
	Warnings(zerolog.New(&buf), table)

	out := buf.String()
	assert.Contains(t, out, `"key":"colour"`)
	assert.Contains(t, out, `"profile":"dev"`)
	assert.Contains(t, out, `"level":"warn"`)
}
