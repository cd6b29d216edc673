package device

import "github.com/oshokin/smart-home/internal/event"

// App is the user-facing listener: it reports every notification it receives.
type App struct {
	// reporter receives notification events.
	reporter event.Reporter
}

// NewApp creates an App reporting to r.
func NewApp(r event.Reporter) *App {
	return &App{reporter: r}
}

// Notify implements Listener.
func (a *App) Notify(n Notification) {
	a.reporter.Report(event.KindNotification, n.Device, "[Notification] "+n.String())
}
