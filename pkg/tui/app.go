package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/logging"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// Screen is one routed view
type Screen interface {
	tea.Model
	SetSize(width, height int)
	Close()
}

// App owns the router, the global error surface and the snackbar, and
// implements the ports every screen reports to.
type App struct {
	ctx      context.Context
	cancel   context.CancelFunc
	service  *api.Service
	settings *models.Settings
	logger   zerolog.Logger

	route    Route
	screen   Screen
	pending  string
	errors   *ErrorStore
	snackbar *Snackbar

	width  int
	height int
}

var (
	_ Dispatcher = (*App)(nil)
	_ Notifier   = (*App)(nil)
	_ Navigator  = (*App)(nil)
)

// NewApp creates the app at initialPath, which defaults to /pipelines
func NewApp(parent context.Context, service *api.Service, settings *models.Settings, initialPath string) (*App, error) {
	if initialPath == "" {
		initialPath = PipelinesPath
	}
	route, err := ParseRoute(initialPath)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}
	ctx, cancel := context.WithCancel(parent)
	return &App{
		ctx:      ctx,
		cancel:   cancel,
		service:  service,
		settings: settings,
		logger:   logging.Component("app"),
		route:    route,
		errors:   NewErrorStore(settings.UI.ErrorTimeout),
		snackbar: NewSnackbar(settings.UI.MaxNotifications, settings.UI.NotificationTimeout),
	}, nil
}

func (a *App) ports() Ports {
	return Ports{Errors: a, Notifier: a, Navigator: a}
}

// Dispatch implements Dispatcher
func (a *App) Dispatch(action ErrorAction) {
	if action.Type == SetError {
		a.logger.Debug().Str("error", action.Error).Msg("error surfaced")
	}
	a.errors.Dispatch(action)
}

// Enqueue implements Notifier
func (a *App) Enqueue(n Notification) {
	a.snackbar.Enqueue(n)
}

// Navigate implements Navigator. The move happens once the current update
// returns; the last request wins.
func (a *App) Navigate(path string) {
	a.pending = path
}

func (a *App) Route() Route        { return a.route }
func (a *App) Screen() Screen      { return a.screen }
func (a *App) Errors() *ErrorStore { return a.errors }
func (a *App) Snackbar() *Snackbar { return a.snackbar }

func (a *App) Init() tea.Cmd {
	a.screen = a.newScreen(a.route)
	return a.initScreen(a.route)
}

// Close tears down the active screen and cancels all outstanding I/O
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
	a.cancel()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.screen != nil {
			a.screen.SetSize(a.width, a.screenHeight())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.Close()
			return a, tea.Quit
		}

	case errorExpiredMsg:
		a.errors.Update(msg)
		return a, nil

	case toastExpiredMsg:
		a.snackbar.Update(msg)
		return a, nil
	}

	var cmd tea.Cmd
	if a.screen != nil {
		_, cmd = a.screen.Update(msg)
	}
	return a, tea.Batch(cmd, a.applyNavigation(), a.errors.Cmd(), a.snackbar.Cmd())
}

func (a *App) applyNavigation() tea.Cmd {
	if a.pending == "" {
		return nil
	}
	path := a.pending
	a.pending = ""

	route, err := ParseRoute(path)
	if err != nil {
		a.errors.Dispatch(ErrorAction{Type: SetError, Error: err.Error()})
		return nil
	}
	a.logger.Debug().Str("path", path).Msg("navigating")

	// Same pipeline: keep the live view and its data
	if pv, ok := a.screen.(*PipelineViewModel); ok && route.Kind == RoutePipelineView && pv.URI() == route.PipelineURI {
		a.route = route
		if route.Tab != "" {
			return pv.SelectTab(route.Tab)
		}
		return nil
	}

	if a.screen != nil {
		a.screen.Close()
	}
	a.route = route
	a.screen = a.newScreen(route)
	return a.initScreen(route)
}

func (a *App) newScreen(route Route) Screen {
	ports := a.ports()
	var s Screen
	switch route.Kind {
	case RoutePipelineView:
		s = NewPipelineViewModel(a.ctx, route.PipelineURI, a.service, ports, a.settings.UI)
	case RoutePipelineEdit:
		s = NewPipelineEditModel(a.ctx, route.PipelineURI, a.service, ports)
	default:
		s = NewPipelineListModel(a.ctx, a.service, ports, a.settings.UI.PageSize)
	}
	if a.width > 0 {
		s.SetSize(a.width, a.screenHeight())
	}
	return s
}

func (a *App) initScreen(route Route) tea.Cmd {
	cmd := a.screen.Init()
	if pv, ok := a.screen.(*PipelineViewModel); ok && route.Tab != "" {
		return tea.Batch(cmd, pv.SelectTab(route.Tab))
	}
	return cmd
}

// screenHeight leaves a line for the error bar
func (a *App) screenHeight() int {
	return max(a.height-1, 1)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 || a.screen == nil {
		return "Loading..."
	}

	content := overlayTopRight(a.screen.View(), a.snackbar.View(), a.width)
	if bar := a.errors.View(a.width); bar != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, bar)
	}
	return content
}
