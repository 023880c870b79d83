package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenarios(t *testing.T) {
	scenarios, err := loadScenarios("")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)
	assert.Equal(t, "single", scenarios[0].Name)
}

func TestScenarioValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: empty\n    iterations: 10\n"), 0o644))
	_, err := loadScenarios(path)
	assert.ErrorContains(t, err, "must be positive")
}

func TestMeasure(t *testing.T) {
	calc := measure(scenario{Name: "t", Slots: 10, Groups: 3, Tracked: true, Blocked: 0.5, Iterations: 20})
	assert.Equal(t, 20, calc.Count)
}
