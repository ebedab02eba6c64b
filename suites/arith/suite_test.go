package arith

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/microunit/registry"
	"github.com/vk/microunit/runner"
)

func TestDouble(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Double(0))
	assert.Equal(t, 198, Double(99))
	assert.Equal(t, 200, Double(100))
}

func TestDoubleFlawed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 198, DoubleFlawed(99), "behaves below the flaw threshold")
	assert.Equal(t, 300, DoubleFlawed(100), "drifts from 100 up")
}

func TestSuite_RegistersAllCases(t *testing.T) {
	t.Parallel()

	reg := registry.NewRegistry()
	(&Suite{}).Register(reg)

	require.Equal(t, 4, reg.Len())

	names := make([]string, 0, 4)
	for _, c := range reg.Cases(registry.OrderByName) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"Test_Double",
		"Test_Double_Flawed",
		"Test_Flawed_Two_Plus_Two",
		"Test_Two_Plus_Two",
	}, names)
}

func TestSuite_RunOutcomes(t *testing.T) {
	t.Parallel()

	reg := registry.NewRegistry()
	(&Suite{}).Register(reg)

	out := &bytes.Buffer{}
	ok := runner.New(reg, out, registry.OrderByName).Run(context.Background())

	require.False(t, ok, "the suite carries two deliberately failing cases")

	report := out.String()
	assert.Contains(t, report, "[!!!!] Failed 2 test cases:")
	assert.Contains(t, report, "> Test_Flawed_Two_Plus_Two")
	assert.Contains(t, report, "> Test_Double_Flawed")
	assert.NotContains(t, report, "> Test_Two_Plus_Two\n")
	assert.NotContains(t, report, "> Test_Double\n")
}

func TestInit_PopulatesDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.Default()
	found := 0
	for _, c := range reg.Cases(registry.OrderByName) {
		switch c.Name {
		case "Test_Two_Plus_Two", "Test_Flawed_Two_Plus_Two", "Test_Double", "Test_Double_Flawed":
			found++
		}
	}
	assert.Equal(t, 4, found, "importing the package must self-register the suite")
}
