// Package notifier delivers rendered notifications to the companion tray
// process over its local webhook, falling back to stdout when no tray is
// running. It implements the scheduler's display and sound collaborator
// contracts.
package notifier

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

	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/notify"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

type webhookAction struct {
	Action string         `json:"action"`
	Label  string         `json:"label"`
	Data   map[string]any `json:"data,omitempty"`
}

type WebhookPayload struct {
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Actions    []webhookAction `json:"actions,omitempty"`
	DurationMs uint32          `json:"duration_ms"`
}

type SoundPayload struct {
	Sound  string `json:"sound"`
	Volume int    `json:"volume"`
}

func New() *Notifier {
	return &Notifier{}
}

// Show sends a notification to the tray process.
func (n *Notifier) Show(title, body string, actions []notify.ActionDescriptor) error {
	payload := WebhookPayload{
		Title:      title,
		Body:       body,
		DurationMs: constants.NotificationDurationMs,
	}
	for _, a := range actions {
		payload.Actions = append(payload.Actions, webhookAction{
			Action: a.Action,
			Label:  a.Label,
			Data:   a.Data,
		})
	}

	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}
	return post(port, secret, "/notify", payload)
}

// Play asks the tray process to play a notification sound.
func (n *Notifier) Play(sound string, volume int) error {
	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}
	return post(port, secret, "/sound", SoundPayload{Sound: sound, Volume: volume})
}

func trayEndpoint() (string, string, error) {
	configDir, err := GetTrayAppConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateTrayProcess(filepath.Join(configDir, constants.NotifierLockfileName))
}

// GetTrayAppConfigDir returns the configuration directory used by the tray application.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, constants.TrayAppIdentifier), nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("flowdeck-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
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
		return "", "", errors.New("flowdeck-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "flowdeck-tray") {
		return "", "", fmt.Errorf("process with PID %d is not flowdeck-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func post(port, secret, path string, payload any) error {
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
	req.Header.Set("X-Flowdeck-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
