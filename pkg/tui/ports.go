package tui

// SetError is the only action the global error channel accepts
const SetError = "SET_ERROR"

// ErrorAction is dispatched to the global error channel
type ErrorAction struct {
	Type  string
	Error string
}

// Dispatcher is the process-wide error channel
type Dispatcher interface {
	Dispatch(action ErrorAction)
}

// Variant selects how a notification is rendered
type Variant int

const (
	VariantSuccess Variant = iota
	VariantError
)

func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "success"
	case VariantError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a transient, auto-dismissing message
type Notification struct {
	Message string
	Variant Variant
}

// Notifier shows transient notifications
type Notifier interface {
	Enqueue(n Notification)
}

// Navigator moves the app to a logical path such as /pipelines/{id}
type Navigator interface {
	Navigate(path string)
}

// Ports groups the app-wide collaborators a screen reports to.
// Screens never reach the App directly.
type Ports struct {
	Errors    Dispatcher
	Notifier  Notifier
	Navigator Navigator
}

// reportError sends msg to the error channel as a SET_ERROR action
func (p Ports) reportError(msg string) {
	if p.Errors == nil || msg == "" {
		return
	}
	p.Errors.Dispatch(ErrorAction{Type: SetError, Error: msg})
}
