package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestNewWithOptions(t *testing.T) {
	var output, errorOutput bytes.Buffer
	presenter := NewWithOptions(&output, &errorOutput, ColorNever)

	assert.Equal(t, &output, presenter.output)
	assert.Equal(t, &errorOutput, presenter.errorOutput)
	assert.Equal(t, ColorNever, presenter.colorMode)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillkitColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLKIT_COLOR always", "", "always", ColorAlways},
		{"SKILLKIT_COLOR force", "", "force", ColorAlways},
		{"SKILLKIT_COLOR never", "", "never", ColorNever},
		{"SKILLKIT_COLOR off", "", "off", ColorNever},
		{"SKILLKIT_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLKIT_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillkitColor != "" {
				os.Setenv("SKILLKIT_COLOR", tt.skillkitColor)
			}

			result := detectColorMode()
			assert.Equal(t, tt.expected, result)

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLKIT_COLOR")
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	presenter.Error(errors.New("boom"), "applying license")
	assert.Contains(t, errorOutput.String(), "[ERROR] applying license: boom")

	errorOutput.Reset()
	presenter.Error(errors.New("boom"), "")
	assert.Contains(t, errorOutput.String(), "[ERROR] boom")

	errorOutput.Reset()
	presenter.Error(nil, "ignored")
	assert.Empty(t, errorOutput.String())
}

func TestQuietMode(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)
	presenter.SetQuiet(true)

	presenter.Success("done")
	presenter.Warning("careful")
	presenter.Info("details")
	presenter.Section("header")
	presenter.Separator()

	assert.Empty(t, output.String())
	assert.True(t, presenter.IsQuiet())
}

func TestMessages(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("created LICENSE.txt")
	presenter.Warning("already licensed")
	presenter.Info("3 skills found")
	presenter.Section("Validation")

	out := output.String()
	assert.Contains(t, out, "✓ created LICENSE.txt")
	assert.Contains(t, out, "⚠ already licensed")
	assert.Contains(t, out, "3 skills found")
	assert.Contains(t, out, "Validation\n----------")
}
