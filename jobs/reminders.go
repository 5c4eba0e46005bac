package jobs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"crm-service/models"
)

// OrderReminders queries the API for orders placed within the reminder
// window and appends one reminder line per order to its log file.
type OrderReminders struct {
	apiURL     string
	logPath    string
	windowDays int
	client     *http.Client
}

// NewOrderReminders creates a reminder job over apiURL appending to
// logPath, covering orders from the last windowDays days.
func NewOrderReminders(apiURL, logPath string, windowDays int) *OrderReminders {
	return &OrderReminders{
		apiURL:     apiURL,
		logPath:    logPath,
		windowDays: windowDays,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *OrderReminders) Name() string { return "order-reminders" }

// Run performs one reminder pass. Failures are appended to the log file,
// never returned.
func (r *OrderReminders) Run() {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	since := time.Now().AddDate(0, 0, -r.windowDays)

	endpoint := fmt.Sprintf("%s/orders?order_date_gte=%s",
		r.apiURL, url.QueryEscape(since.Format(time.RFC3339)))
	resp, err := r.client.Get(endpoint)
	if err != nil {
		r.append(fmt.Sprintf("%s: ERROR - %v\n", timestamp, err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		r.append(fmt.Sprintf("%s: ERROR - API returned HTTP %d\n", timestamp, resp.StatusCode))
		return
	}

	var orders []models.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		r.append(fmt.Sprintf("%s: ERROR - %v\n", timestamp, err))
		return
	}

	r.append(fmt.Sprintf("%s: Processing order reminders\n", timestamp))
	for _, order := range orders {
		r.append(fmt.Sprintf("%s: Order ID %d - Customer: %s (%s) - Order Date: %s\n",
			timestamp, order.ID, order.Customer.Email, order.Customer.Name,
			order.OrderDate.Format("2006-01-02 15:04:05")))
	}
	if len(orders) == 0 {
		r.append(fmt.Sprintf("%s: No recent orders found\n", timestamp))
	}
}

func (r *OrderReminders) append(line string) {
	f, err := os.OpenFile(r.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("reminder log open failed", "path", r.logPath, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		slog.Error("reminder log write failed", "path", r.logPath, "error", err)
	}
}
