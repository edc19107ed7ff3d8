package smart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"CheckDiskGo/internal/alerts"
	"CheckDiskGo/internal/checker"
	"CheckDiskGo/internal/notifications"
	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"
	"CheckDiskGo/internal/report"
	"CheckDiskGo/internal/websocket"
)

// Monitor handles periodic disk health checks through the bundled
// CrystalDiskInfo tool. Each check launches the tool elevated, so the
// interval should be generous; RunNow serves on-demand checks between ticks.
type Monitor struct {
	config    *config.Config
	checker   *checker.Checker
	ticker    *time.Ticker
	stopChan  chan struct{}
	isRunning bool
	mutex     sync.Mutex

	reportMu      sync.RWMutex
	lastReport    *report.Report
	lastHadAlerts bool
	statusKnown   bool

	checking      bool
	checkingMu    sync.Mutex
	lastAlertTime time.Time
	alertTimeMu   sync.Mutex

	alertHandler *AlertHandler
	emailManager *notifications.EmailManager
}

// NewMonitor creates a new disk health monitor instance
func NewMonitor(cfg *config.Config) *Monitor {
	m := &Monitor{
		config:       cfg,
		checker:      checker.New(cfg),
		stopChan:     make(chan struct{}),
		emailManager: notifications.NewEmailManager(cfg),
	}
	m.alertHandler = NewAlertHandler(m)
	return m
}

// StartMonitoring begins the periodic disk health checks
func (m *Monitor) StartMonitoring() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isRunning {
		return fmt.Errorf("disk health monitor is already running")
	}

	if !m.config.Monitoring.Smart.Enabled {
		return fmt.Errorf("disk health monitoring is disabled in configuration")
	}

	interval := time.Duration(m.config.Monitoring.Smart.CheckInterval) * time.Second
	m.ticker = time.NewTicker(interval)
	m.isRunning = true

	logger.Info("Starting disk health monitor",
		logger.Int("interval_seconds", m.config.Monitoring.Smart.CheckInterval),
		logger.Int("min_health_percent", m.config.Monitoring.Smart.MinHealthPercent),
		logger.Int("max_temperature", m.config.Monitoring.Smart.MaxTemperature))

	// Run the first check immediately, then continue at intervals
	go func() {
		m.checkDiskHealth()

		for {
			select {
			case <-m.ticker.C:
				m.checkDiskHealth()
			case <-m.stopChan:
				m.ticker.Stop()
				return
			}
		}
	}()

	return nil
}

// StopMonitoring halts the periodic disk health checks
func (m *Monitor) StopMonitoring() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.isRunning {
		return
	}

	close(m.stopChan)
	m.isRunning = false
	logger.Info("Disk health monitor stopped")
}

// StartBackgroundMonitor creates and starts a disk health monitor in a
// background goroutine. Returns a function to stop monitoring.
func StartBackgroundMonitor(ctx context.Context, cfg *config.Config) (*Monitor, func(), error) {
	monitor := NewMonitor(cfg)

	if err := monitor.StartMonitoring(); err != nil {
		return nil, nil, err
	}

	return monitor, func() {
		monitor.StopMonitoring()
	}, nil
}

// GetLastReport returns the most recent disk report, or nil if no check
// has completed yet.
func (m *Monitor) GetLastReport() *report.Report {
	m.reportMu.RLock()
	defer m.reportMu.RUnlock()
	return m.lastReport
}

// minReportAge is how fresh a cached report must be for RunNow to return
// it instead of launching the tool again. Every launch raises an elevation
// prompt, so back-to-back refresh requests reuse the last result.
const minReportAge = 30 * time.Second

// RunNow performs an on-demand disk health check. Only one check may run at
// a time; a second caller gets an error instead of a second elevation prompt.
func (m *Monitor) RunNow(ctx context.Context) (*report.Report, error) {
	m.reportMu.RLock()
	cached := m.lastReport
	m.reportMu.RUnlock()
	if cached != nil && time.Since(cached.Timestamp) < minReportAge {
		return cached, nil
	}

	m.checkingMu.Lock()
	if m.checking {
		m.checkingMu.Unlock()
		return nil, fmt.Errorf("a disk health check is already in progress")
	}
	m.checking = true
	m.checkingMu.Unlock()

	defer func() {
		m.checkingMu.Lock()
		m.checking = false
		m.checkingMu.Unlock()
	}()

	rep, err := m.checker.Run(ctx)
	if err != nil {
		return nil, err
	}

	m.publishReport(rep)
	return rep, nil
}

// checkDiskHealth performs a single scheduled check
func (m *Monitor) checkDiskHealth() {
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(m.config.Checker.LaunchTimeout+m.config.Checker.DirectOutputWait*3)*time.Second)
	defer cancel()

	rep, err := m.RunNow(ctx)
	if err != nil {
		logger.Error("Scheduled disk health check failed",
			logger.String("error", err.Error()))
		return
	}

	logger.Info("Disk health check completed",
		logger.Int("disks", len(rep.Disks)),
		logger.Int("alerts", rep.Alerts))
}

// publishReport stores the report, streams it to WebSocket clients and
// routes it to the alert handler.
func (m *Monitor) publishReport(rep *report.Report) {
	m.reportMu.Lock()
	hadAlerts := m.lastHadAlerts
	known := m.statusKnown
	hasAlerts := rep.Alerts > 0
	m.lastReport = rep
	m.lastHadAlerts = hasAlerts
	m.statusKnown = true
	m.reportMu.Unlock()

	websocket.GetRegistry().BroadcastReport(rep)

	statusChanged := known && hadAlerts != hasAlerts
	if hasAlerts {
		m.alertHandler.HandleAlert(rep, statusChanged)
	} else {
		m.alertHandler.HandleNormal(rep, statusChanged)
	}
}

// GetNotificationManagers returns the email notification manager
func (m *Monitor) GetNotificationManagers() alerts.NotificationManager {
	return m.emailManager
}

// GetConfig returns the monitor's configuration
func (m *Monitor) GetConfig() interface{} {
	return m.config
}

// GetLastAlertTime returns when the last alert notification was sent
func (m *Monitor) GetLastAlertTime() time.Time {
	m.alertTimeMu.Lock()
	defer m.alertTimeMu.Unlock()
	return m.lastAlertTime
}

// UpdateLastAlertTime records that an alert notification was just sent
func (m *Monitor) UpdateLastAlertTime() {
	m.alertTimeMu.Lock()
	defer m.alertTimeMu.Unlock()
	m.lastAlertTime = time.Now()
}

// IsThrottlingEnabled reports whether alert throttling is configured
func (m *Monitor) IsThrottlingEnabled() bool {
	return m.config.Notifications.Throttling.Enabled
}

// GetThrottlingCooldownPeriod returns the throttling cooldown in seconds
func (m *Monitor) GetThrottlingCooldownPeriod() int {
	return m.config.Notifications.Throttling.CooldownPeriod
}
