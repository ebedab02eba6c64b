package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/microunit/internal/ctxlog"
)

// Built-in defaults, applied after flag and file values.
const (
	DefaultOrder     = "name"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Settings is the flattened harness configuration. An empty field means
// "not set at this layer"; Resolve fills the gaps.
type Settings struct {
	Order     string
	LogLevel  string
	LogFormat string
}

// fileModel mirrors the settings file schema. Both blocks are optional;
// a second block of either type is a decode diagnostic.
type fileModel struct {
	Runner *runnerBlock `hcl:"runner,block"`
	Output *outputBlock `hcl:"output,block"`
}

type runnerBlock struct {
	Order string `hcl:"order,optional"`
}

type outputBlock struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Load parses the HCL settings file at path. Attribute expressions can
// reference process environment variables through the `env` object, e.g.
// `log_level = env.MICROUNIT_LOG_LEVEL`.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVariables(),
		},
	}

	var fm fileModel
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &fm); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	settings := &Settings{}
	if fm.Runner != nil {
		settings.Order = fm.Runner.Order
	}
	if fm.Output != nil {
		settings.LogLevel = fm.Output.LogLevel
		settings.LogFormat = fm.Output.LogFormat
	}

	logger.Debug("Settings file loaded.", "order", settings.Order,
		"log_level", settings.LogLevel, "log_format", settings.LogFormat)
	return settings, nil
}

// Resolve merges the flag layer over the file layer and applies defaults
// to whatever is still unset.
func Resolve(flags, file Settings) Settings {
	return Settings{
		Order:     firstNonEmpty(flags.Order, file.Order, DefaultOrder),
		LogLevel:  firstNonEmpty(flags.LogLevel, file.LogLevel, DefaultLogLevel),
		LogFormat: firstNonEmpty(flags.LogFormat, file.LogFormat, DefaultLogFormat),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// envVariables exposes the process environment as a cty object usable in
// settings expressions.
func envVariables() cty.Value {
	vals := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		vals[key] = cty.StringVal(value)
	}
	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}
