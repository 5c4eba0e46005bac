package jobs

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Heartbeat appends a liveness line to its log file and probes the API's
// greeting endpoint, recording whether it responded.
type Heartbeat struct {
	apiURL  string
	logPath string
	client  *http.Client
}

// NewHeartbeat creates a heartbeat job probing apiURL and appending to
// logPath.
func NewHeartbeat(apiURL, logPath string) *Heartbeat {
	return &Heartbeat{
		apiURL:  apiURL,
		logPath: logPath,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *Heartbeat) Name() string { return "heartbeat" }

// Run performs one heartbeat. Failures are appended to the log file,
// never returned.
func (h *Heartbeat) Run() {
	timestamp := time.Now().Format("02/01/2006-15:04:05")
	h.append(fmt.Sprintf("%s CRM is alive\n", timestamp))

	resp, err := h.client.Get(h.apiURL + "/hello")
	if err != nil {
		h.append(fmt.Sprintf("%s API endpoint unreachable: %v\n", timestamp, err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		h.append(fmt.Sprintf("%s API endpoint responsive\n", timestamp))
	} else {
		h.append(fmt.Sprintf("%s API endpoint HTTP %d\n", timestamp, resp.StatusCode))
	}
}

func (h *Heartbeat) append(line string) {
	f, err := os.OpenFile(h.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("heartbeat log open failed", "path", h.logPath, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		slog.Error("heartbeat log write failed", "path", h.logPath, "error", err)
	}
}
