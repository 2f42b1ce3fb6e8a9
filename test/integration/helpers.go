//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/bjb28/pws-api-wrapper/pkg/pwsclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey  string
	BaseURL string
	PwsPath string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("PENTEST_WS_API_KEY"),
		BaseURL: os.Getenv("PWS_BASE_URL"),
		PwsPath: getPwsPath(),
		Verbose: os.Getenv("PWS_VERBOSE") == "true",
	}
}

func getPwsPath() string {
	if path := os.Getenv("PWS_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../pws",
		"./pws",
		"../pws",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "pws"
}

// SkipIfMissingConfig skips the test when no API key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("PENTEST_WS_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the pws binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingConfig(t)

	if _, err := exec.LookPath(config.PwsPath); err != nil {
		t.Skipf("pws binary not found at %s, skipping integration test", config.PwsPath)
	}
}

// Client builds a library client against the configured account.
func (config *TestConfig) Client(t *testing.T) pws.Client {
	t.Helper()

	client, err := pwsclient.New(&pws.Config{
		APIKey:      config.APIKey,
		BaseURL:     config.BaseURL,
		HTTPTimeout: 30 * time.Second,
		RetryMax:    2,
	})
	require.NoError(t, err)

	return client
}

// CommandRunner runs the pws binary.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a pws command and returns its output.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	cmd := exec.Command(runner.config.PwsPath, args...)
	cmd.Env = append(os.Environ(), "PWS_API_KEY="+runner.config.APIKey)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "PWS_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.PwsPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupEngagement deletes the named engagement if it still exists.
func CleanupEngagement(t *testing.T, client pws.Client, name string) {
	t.Helper()

	ctx := context.Background()

	engagement, err := client.Engagements().GetByName(ctx, name)
	if err != nil {
		return
	}

	result, err := client.Engagements().Delete(ctx, engagement)
	if err != nil {
		t.Logf("Cleanup warning for engagement %s: %v", name, err)

		return
	}

	if !result.OK {
		t.Logf("Cleanup warning for engagement %s: %s", name, result.Message)
	}
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var doc any
	if err := yaml.Unmarshal([]byte(output), &doc); err != nil {
		t.Errorf("Output is not YAML: %v\n%s", err, output)
	}
}
