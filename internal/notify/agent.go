package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitloop/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// AgentScheduler talks to the local habitloop tray agent, which owns actual
// notification delivery. The agent advertises itself through a lockfile
// containing "port|pid|secret"; every request is authenticated with the
// shared secret.
type AgentScheduler struct{}

type scheduleRequest struct {
	Weekday    int    `json:"weekday"` // 1=Sunday .. 7=Saturday
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	DurationMs uint32 `json:"duration_ms"`
}

type scheduleResponse struct {
	EntryID string `json:"entry_id"`
}

type cancelRequest struct {
	EntryID string `json:"entry_id"`
}

func NewAgentScheduler() *AgentScheduler {
	return &AgentScheduler{}
}

// Available reports whether a running agent process could be discovered and
// validated through its lockfile.
func (a *AgentScheduler) Available() bool {
	_, _, err := a.connect()
	return err == nil
}

func (a *AgentScheduler) ScheduleRecurring(weekday, hour, minute int, title, body string) (string, error) {
	port, secret, err := a.connect()
	if err != nil {
		return "", err
	}

	req := scheduleRequest{
		Weekday:    weekday,
		Hour:       hour,
		Minute:     minute,
		Title:      title,
		Body:       body,
		DurationMs: constants.NotificationDurationMs,
	}

	var resp scheduleResponse
	if err := postJSON(port, secret, "/schedule", req, &resp); err != nil {
		return "", err
	}
	if resp.EntryID == "" {
		return "", errors.New("agent returned an empty entry id")
	}

	return resp.EntryID, nil
}

func (a *AgentScheduler) Cancel(entryID string) error {
	port, secret, err := a.connect()
	if err != nil {
		return err
	}
	return postJSON(port, secret, "/cancel", cancelRequest{EntryID: entryID}, nil)
}

func (a *AgentScheduler) connect() (string, string, error) {
	configDir, err := GetAgentConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateAgentProcess(filepath.Join(configDir, constants.AgentLockfileName))
}

// GetAgentConfigDir returns the configuration directory used by the tray agent.
func GetAgentConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	agentConfigDir := filepath.Join(configDir, constants.AgentAppIdentifier)

	// Check for settings.json to see if a custom lockfile dir is set
	settingsPath := filepath.Join(agentConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return agentConfigDir, nil
}

func findAndValidateAgentProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("habitloop-agent is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	// Validate port is a valid number in the valid TCP range (1-65535)
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("habitloop-agent process not running")
	}

	if !strings.HasPrefix(process.Executable(), "habitloop-agent") {
		return "", "", fmt.Errorf("process with PID %d is not habitloop-agent (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func postJSON(port, secret, path string, payload interface{}, out interface{}) error {
	url := fmt.Sprintf("http://127.0.0.1:%s%s", port, path)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Habitloop-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("agent request failed with status %d: %s", res.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
