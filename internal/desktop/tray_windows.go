//go:build windows
// +build windows

package desktop

import (
	"context"
	"fmt"

	"fyne.io/systray"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// TrayApp represents system tray application
type TrayApp struct {
	cal    Resolver
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(cal Resolver, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		cal:    cal,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(trayIcon)
	systray.SetTitle("CN")
	t.updateTooltip()

	mToday := systray.AddMenuItem("Today", "Show today's holiday status")
	mRefresh := systray.AddMenuItem("Refresh", "Reload holiday data for this year")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	go func() {
		for {
			select {
			case <-mToday.ClickedCh:
				t.logger.Info("Today clicked from tray")
				showMessageBox("Holiday Calendar", TodaySummary(context.Background(), t.cal), MB_OK|MB_ICONINFORMATION)
			case <-mRefresh.ClickedCh:
				t.logger.Info("Refresh clicked from tray")
				t.cal.Forget(dateutil.Today().Year())
				t.updateTooltip()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

func (t *TrayApp) updateTooltip() {
	today := dateutil.Today()
	c := t.cal.Resolve(context.Background(), today.Year())
	systray.SetTooltip(fmt.Sprintf("%s: %s", dateutil.FormatDate(today), calendar.Classify(today, c)))
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}
