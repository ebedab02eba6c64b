package cli_behavior

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/microunit/internal/app"
	"github.com/vk/microunit/internal/testutil"
	"github.com/vk/microunit/registry"
	"github.com/vk/microunit/unit"
)

type suiteFunc func(r *registry.Registry)

func (f suiteFunc) Register(r *registry.Registry) { f(r) }

// orderedSuite registers two cases whose report order reveals which
// iteration order the runner resolved to.
var orderedSuite = suiteFunc(func(r *registry.Registry) {
	r.Register("zeta_registered_first", func(res *unit.Result) {})
	r.Register("alpha_registered_second", func(res *unit.Result) {})
})

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "microunit.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_FileValueIsApplied(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
runner {
  order = "registration"
}
`)
	cfg, err := app.NewConfig(app.Config{ConfigPath: path})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.NoError(t, result.Err)
	assert.Less(t,
		strings.Index(result.Report, "zeta_registered_first"),
		strings.Index(result.Report, "alpha_registered_second"),
		"the file's registration order must drive iteration")
}

func TestConfig_FlagOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
runner {
  order = "registration"
}
`)
	cfg, err := app.NewConfig(app.Config{ConfigPath: path, Order: "name"})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.NoError(t, result.Err)
	assert.Less(t,
		strings.Index(result.Report, "alpha_registered_second"),
		strings.Index(result.Report, "zeta_registered_first"),
		"an explicit flag must beat the file value")
}

func TestConfig_DefaultOrderIsByName(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.NoError(t, result.Err)
	assert.Less(t,
		strings.Index(result.Report, "alpha_registered_second"),
		strings.Index(result.Report, "zeta_registered_first"))
}

func TestConfig_FileControlsLogging(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
output {
  log_level  = "debug"
  log_format = "json"
}
`)
	cfg, err := app.NewConfig(app.Config{ConfigPath: path})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, `"Runner starting."`,
		"debug level from the file must reach the runner logger, as JSON")
	assert.NotContains(t, result.Report, "Runner starting.",
		"logs must never leak into the run report")
}

func TestConfig_EnvInterpolation(t *testing.T) {
	t.Setenv("MICROUNIT_MERGE_TEST_LEVEL", "debug")

	path := writeSettings(t, `
output {
  log_level = env.MICROUNIT_MERGE_TEST_LEVEL
}
`)
	cfg, err := app.NewConfig(app.Config{ConfigPath: path})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "Runner starting.")
}

func TestConfig_InvalidFileFailsStartup(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
runner {
  order =
`)
	cfg, err := app.NewConfig(app.Config{ConfigPath: path})
	require.NoError(t, err)

	result := testutil.RunHarness(t, cfg, orderedSuite)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "failed to parse")
}
