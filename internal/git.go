package internal

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/stretchr/testify/mock"
)

// --- GitClient Interface Definition ---

// GitClient defines the Git operations the trend pipeline needs.
// This allows the loaders to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(repoPath string, args ...string) ([]byte, error)

	// CommitLog returns the raw commit log, one "<epoch>\t<subject>" line
	// per commit. Order is whatever git emits; callers must sort.
	CommitLog(repoPath string) ([]byte, error)

	// RepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	RepoRoot(contextPath string) (string, error)
}

// --- LocalGitClient Implementation ---

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.Stderr != nil {
			errMsg := strings.TrimSpace(string(exitErr.Stderr))
			return nil, fmt.Errorf("git command '%s' failed: %s: %w", strings.Join(fullArgs, " "), errMsg, err)
		}
		return nil, fmt.Errorf("could not execute git command (is git installed and in PATH?): %w", err)
	}
	return out, nil
}

// CommitLog implements the GitClient interface.
func (c *LocalGitClient) CommitLog(repoPath string) ([]byte, error) {
	return c.Run(repoPath, "log", "--pretty=format:%at\t%s")
}

// RepoRoot implements the GitClient interface by executing 'git rev-parse --show-toplevel'.
func (c *LocalGitClient) RepoRoot(contextPath string) (string, error) {
	out, err := c.Run(contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find git repository root from '%s': %w", contextPath, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// --- MockGitClient Implementation ---

// MockGitClient is a mock type for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(repoPath string, args ...string) ([]byte, error) {
	var mockArgs []interface{}
	mockArgs = append(mockArgs, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CommitLog implements the GitClient interface.
func (m *MockGitClient) CommitLog(repoPath string) ([]byte, error) {
	ret := m.Called(repoPath)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// RepoRoot implements the GitClient interface.
func (m *MockGitClient) RepoRoot(contextPath string) (string, error) {
	ret := m.Called(contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}
