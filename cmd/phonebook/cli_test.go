package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig points both the directory file and the log file into a
// temp dir so tests leave nothing behind in the working directory.
func writeTestConfig(t *testing.T) (configPath, dataPath string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "phonebook.yaml")
	dataPath = filepath.Join(dir, "phone_directory.json")
	payload := fmt.Sprintf(`
storage:
  backend: json
  file: %s
logging:
  level: debug
  file: %s
`, dataPath, filepath.Join(dir, "phone_directory.log"))
	require.NoError(t, os.WriteFile(configPath, []byte(payload), 0644))
	return configPath, dataPath
}

// runCLI executes the root command with the given stdin and args,
// returning combined output and the execution error.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

const validAddInput = "Соколов\nСергей\nАнатольевич\nСберБанк\n495-555-6666\n916-666-7777\n"

func TestAddThenDisplay(t *testing.T) {
	configPath, dataPath := writeTestConfig(t)

	out, err := runCLI(t, validAddInput, "--config", configPath, "add")
	require.NoError(t, err)
	assert.Contains(t, out, "Last name: ")
	assert.Contains(t, out, "Entry added successfully.")

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_name": "Соколов"`)

	out, err = runCLI(t, "", "--config", configPath, "display", "--page", "1", "--per-page", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "ID 1")
	assert.Contains(t, out, "Last name: Соколов")
	assert.Contains(t, out, "Page 1/1")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	configPath, dataPath := writeTestConfig(t)

	input := "1\nСергей\nАнатольевич\nСберБанк\n495-555-6666\n916-666-7777\n"
	out, err := runCLI(t, input, "--config", configPath, "add")
	require.Error(t, err)
	// The failure is reported once, not echoed again by the command runner.
	assert.Equal(t, 1, strings.Count(out, "Failed to create record"))
	assert.NotContains(t, out, "Error:")

	_, statErr := os.Stat(dataPath)
	assert.True(t, os.IsNotExist(statErr), "no file should be written for a rejected record")
}

func TestEditFlow(t *testing.T) {
	configPath, dataPath := writeTestConfig(t)

	_, err := runCLI(t, validAddInput, "--config", configPath, "add")
	require.NoError(t, err)

	// Field 2 is the first name.
	out, err := runCLI(t, "2\nАндрей\n", "--config", configPath, "edit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Current values:")
	assert.Contains(t, out, "Choose a field to edit:")
	assert.Contains(t, out, "Entry edited successfully.")

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"first_name": "Андрей"`)
}

func TestEditInvalidIndex(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	out, err := runCLI(t, "", "--config", configPath, "edit", "5")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid index.")
	assert.NotContains(t, out, "Error:")
}

func TestEditInvalidFieldNumber(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	_, err := runCLI(t, validAddInput, "--config", configPath, "add")
	require.NoError(t, err)

	out, err := runCLI(t, "10\n", "--config", configPath, "edit", "1")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid input. Please enter a valid field number.")
	assert.NotContains(t, out, "Error:")
}

func TestSearch(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	_, err := runCLI(t, validAddInput, "--config", configPath, "add")
	require.NoError(t, err)

	t.Run("field equals", func(t *testing.T) {
		out, err := runCLI(t, "", "--config", configPath, "search", "first_name=сергей")
		require.NoError(t, err)
		assert.Contains(t, out, "Last name: Соколов")
		assert.Contains(t, out, "Page 1/1")
	})

	t.Run("unknown field", func(t *testing.T) {
		out, err := runCLI(t, "", "--config", configPath, "search", "first_nam=сергей")
		require.NoError(t, err)
		assert.Contains(t, out, "Field 'first_nam' does not exist.")
		assert.Contains(t, out, "No results found.")
	})

	t.Run("no matches", func(t *testing.T) {
		out, err := runCLI(t, "", "--config", configPath, "search", "никого")
		require.NoError(t, err)
		assert.Contains(t, out, "No results found.")
	})
}

func TestStatus(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	_, err := runCLI(t, validAddInput, "--config", configPath, "add")
	require.NoError(t, err)

	out, err := runCLI(t, "", "--config", configPath, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend: json")
	assert.Contains(t, out, "Records: 1")
}
