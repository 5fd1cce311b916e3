package types

// ScreenType identifies which top-level screen is active.
type ScreenType int

const (
	ScreenMain ScreenType = iota
	ScreenRegister
	ScreenSettings
	ScreenController
	ScreenProfile
	ScreenWaking
	ScreenStream
)

// String returns a short name for logging.
func (s ScreenType) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenRegister:
		return "register"
	case ScreenSettings:
		return "settings"
	case ScreenController:
		return "controller"
	case ScreenProfile:
		return "profile"
	case ScreenWaking:
		return "waking"
	case ScreenStream:
		return "stream"
	default:
		return "unknown"
	}
}
