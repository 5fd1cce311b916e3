// Package ui wires the frame loop together: input polling, the focus
// stack, the navigation sidebar, and the active screen.
package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/vitalink/discovery"
	"github.com/user-none/vitalink/session"
	"github.com/user-none/vitalink/ui/focus"
	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/nav"
	"github.com/user-none/vitalink/ui/screens"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// App is the main application struct that implements ebiten.Game
type App struct {
	config *storage.Config

	focusStack   *focus.Stack
	inputManager *input.Manager
	sidebar      *nav.Sidebar
	navGest      *gesture.State
	notification *Notification

	current   types.ScreenType
	screenSet map[types.ScreenType]screens.Screen

	popup *errorPopup
	debug *debugMenu

	screenshots *ScreenshotManager

	// Screenshot pending flag (set in Update, processed in Draw)
	screenshotPending bool

	sess *session.Session
	disc *discovery.Service
}

// NewApp creates and initializes the application
func NewApp() (*App, error) {
	if err := storage.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}

	a := &App{
		focusStack:   focus.NewStack(),
		inputManager: input.NewManager(),
		navGest:      gesture.NewState(),
		notification: NewNotification(),
		current:      types.ScreenMain,
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Config load failed, using defaults: %v", err)
		a.config = storage.DefaultConfig()
		a.ShowError("Settings could not be read", "Starting with default settings.")
	} else {
		a.config = config
	}

	a.sidebar = nav.NewSidebar(a.config)
	a.screenshots = NewScreenshotManager(a.notification)

	if a.config.AutoDiscovery {
		a.disc = discovery.NewService()
		if err := a.disc.Start(); err != nil {
			log.Printf("Discovery unavailable: %v", err)
			a.disc = nil
		}
	}

	a.screenSet = map[types.ScreenType]screens.Screen{
		types.ScreenMain:       screens.NewMainScreen(a),
		types.ScreenRegister:   screens.NewRegisterScreen(a),
		types.ScreenSettings:   screens.NewSettingsScreen(a),
		types.ScreenController: screens.NewControllerScreen(a),
		types.ScreenProfile:    screens.NewProfileScreen(a),
		types.ScreenWaking:     screens.NewConnectScreen(a),
		types.ScreenStream:     screens.NewStreamScreen(a),
	}

	a.screenSet[a.current].OnEnter()
	return a, nil
}

// Update implements ebiten.Game
func (a *App) Update() error {
	a.inputManager.Poll()
	in := a.inputManager
	f := a.focusStack

	// F12 screenshot is global and works everywhere
	if input.JustPressedScreenshotKey() {
		a.screenshotPending = true
	}

	// A visible error popup or debug menu owns input outright
	if a.popup != nil {
		if a.popup.update(in) {
			a.popup = nil
			f.PopModal()
		}
		a.sidebar.Update()
		return nil
	}
	if a.debug != nil {
		if a.debug.update(in) {
			a.debug = nil
			f.PopModal()
		}
		a.sidebar.Update()
		return nil
	}
	if in.Pressed(input.BtnStart) && !f.HasModal() && a.current != types.ScreenStream {
		a.debug = showDebugMenu(f, a.debugLines)
	}

	// Focus routing runs before anything screen- or nav-specific so a
	// crossing consumes its input for the whole frame.
	crossed := f.HandleZoneCrossing(a.current, in.Pressed(input.BtnRight), a.sidebar)

	// Select toggles the sidebar from anywhere outside a modal
	if !f.HasModal() && in.Pressed(input.BtnSelect) && a.current != types.ScreenStream {
		a.toggleSidebar()
	}

	a.handleNavTouch()

	if f.IsNavBar() {
		if !crossed {
			a.updateNavFocus()
		}
	} else if !a.sidebarOwnsInput() {
		a.screenSet[a.current].Update()
	}

	a.sidebar.Update()
	return nil
}

// sidebarOwnsInput reports whether the open or animating sidebar should
// keep this frame's input away from the content screen.
func (a *App) sidebarOwnsInput() bool {
	return a.sidebar.IsExpanded() || a.sidebar.IsAnimating()
}

func (a *App) toggleSidebar() {
	f := a.focusStack
	if a.sidebar.IsCollapsed() {
		a.sidebar.Toggle()
		f.SetZone(focus.ZoneNavBar)
		f.SetIndex(a.sidebar.SelectedIcon())
	} else if a.sidebar.IsExpanded() {
		a.sidebar.Toggle()
		f.SetZone(focus.ZoneForScreen(a.current))
	}
}

// navKeys is one frame's pressed edges relevant to sidebar focus.
type navKeys struct {
	up, down, left, cross, circle bool
}

// updateNavFocus handles D-pad input while the sidebar owns focus.
func (a *App) updateNavFocus() {
	in := a.inputManager
	a.applyNavFocus(navKeys{
		up:     in.Pressed(input.BtnUp),
		down:   in.Pressed(input.BtnDown),
		left:   in.Pressed(input.BtnLeft),
		cross:  in.Pressed(input.BtnCross),
		circle: in.Pressed(input.BtnCircle),
	})
}

func (a *App) applyNavFocus(k navKeys) {
	f := a.focusStack

	// Collapsed with nav focus means the pill itself is focused: Cross or
	// Left reopens the sidebar, nothing else responds.
	if a.sidebar.IsCollapsed() {
		if k.cross || k.left {
			a.sidebar.RequestExpand()
			f.SetIndex(a.sidebar.SelectedIcon())
		}
		return
	}
	if !a.sidebar.IsExpanded() {
		return
	}

	if k.up {
		a.sidebar.MoveSelection(-1)
		f.SetIndex(a.sidebar.SelectedIcon())
	}
	if k.down {
		a.sidebar.MoveSelection(1)
		f.SetIndex(a.sidebar.SelectedIcon())
	}
	if k.cross {
		a.activateNavIcon(a.sidebar.SelectedIcon())
	}
	if k.circle {
		a.sidebar.RequestCollapse(true)
		f.SetZone(focus.ZoneForScreen(a.current))
	}
}

// activateNavIcon switches to the icon's screen and releases the sidebar.
func (a *App) activateNavIcon(icon int) {
	a.sidebar.SetSelectedIcon(icon)
	a.SwitchTo(nav.ScreenForIcon(icon))
	a.sidebar.RequestCollapse(true)
}

// handleNavTouch processes pill taps, icon taps, and the tap-outside
// collapse. Touches the sidebar consumes are blocked so the contact never
// reaches the content screen.
func (a *App) handleNavTouch() {
	p := a.inputManager.Pointer()
	ev := a.navGest.Update(p.Down, p.X, p.Y)
	a.routeNavGesture(ev)
}

// routeNavGesture acts on one frame's nav gesture event. The sidebar never
// reacts while a modal owns input or the stream covers the display; the
// gesture state itself keeps tracking so a contact spanning a modal's
// dismissal doesn't go stale.
func (a *App) routeNavGesture(ev gesture.Event) {
	if a.focusStack.HasModal() || a.current == types.ScreenStream {
		return
	}

	in := a.inputManager

	if a.sidebar.IsCollapsed() {
		if ev.Phase == gesture.PhaseDown && a.sidebar.PillHit(ev.X, ev.Y) {
			in.BlockForTransition()
			a.navGest.Reset()
			a.sidebar.RequestExpand()
			a.focusStack.SetZone(focus.ZoneNavBar)
			a.focusStack.SetIndex(a.sidebar.SelectedIcon())
		}
		return
	}

	if !a.sidebar.IsExpanded() {
		return
	}

	if ev.Phase == gesture.PhaseDown {
		if ev.X > a.sidebar.CurrentWidth() {
			// Touch in content: collapse and swallow the contact
			in.BlockForTransition()
			a.navGest.Reset()
			a.sidebar.RequestCollapse(true)
			a.focusStack.SetZone(focus.ZoneForScreen(a.current))
		}
		return
	}

	if ev.Phase == gesture.PhaseUp && ev.Tap {
		if icon := a.sidebar.IconAt(ev.X, ev.Y); icon >= 0 {
			a.activateNavIcon(icon)
		}
	}
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(style.Background)

	a.screenSet[a.current].Draw(screen)

	// The stream claims the whole display; the sidebar never draws over it
	if a.current != types.ScreenStream {
		a.sidebar.Draw(screen, a.focusStack.IsNavBar())
	}

	if a.popup != nil {
		a.popup.draw(screen)
	}
	if a.debug != nil {
		a.debug.draw(screen)
	}
	a.notification.Draw(screen)

	// Take screenshot if pending (after everything is drawn)
	if a.screenshotPending {
		a.screenshotPending = false
		if err := a.screenshots.TakeScreenshot(screen); err != nil {
			log.Printf("Screenshot failed: %v", err)
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return style.ScreenWidth, style.ScreenHeight
}

// screens.App implementation

// SwitchTo transitions to another screen. Held buttons and the current
// touch are blocked so the press that caused the switch doesn't fire again
// on the new screen.
func (a *App) SwitchTo(screen types.ScreenType) {
	if screen == a.current {
		return
	}

	a.notification.Clear()
	a.screenSet[a.current].OnExit()

	a.current = screen
	a.inputManager.BlockForTransition()
	a.navGest.Reset()

	if !a.focusStack.HasModal() && !a.focusStack.IsNavBar() {
		a.focusStack.SetZone(focus.ZoneForScreen(screen))
		a.focusStack.SetIndex(0)
	}

	// The stream claims the whole display; no animation, just gone.
	if screen == types.ScreenStream {
		a.sidebar.ResetCollapsed()
	}

	a.screenSet[screen].OnEnter()
}

// Focus returns the focus stack.
func (a *App) Focus() *focus.Stack { return a.focusStack }

// Input returns the input manager.
func (a *App) Input() *input.Manager { return a.inputManager }

// Config returns the loaded configuration.
func (a *App) Config() *storage.Config { return a.config }

// SaveConfig persists the configuration to disk.
func (a *App) SaveConfig() {
	if err := storage.SaveConfig(a.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// Notify shows a transient message.
func (a *App) Notify(message string) {
	a.notification.ShowDefault(message)
}

// ShowError raises the modal error dialog.
func (a *App) ShowError(title, message string) {
	if a.popup != nil {
		return
	}
	a.popup = showErrorPopup(a.focusStack, title, message)
}

// ContentLeft returns the x offset where content starts this frame.
func (a *App) ContentLeft() float64 {
	return a.sidebar.CurrentWidth()
}

// Connect starts a session to the host, replacing any existing one.
func (a *App) Connect(host storage.RegisteredHost) {
	if a.sess != nil {
		a.sess.Stop()
	}
	a.sess = session.Start(host)
}

// Session returns the active session, nil when idle.
func (a *App) Session() *session.Session { return a.sess }

// DiscoveredHosts returns the current discovery snapshot.
func (a *App) DiscoveredHosts() []discovery.Host {
	if a.disc == nil {
		return nil
	}
	return a.disc.Hosts()
}

// debugLines builds the live state dump for the debug menu.
func (a *App) debugLines() []string {
	stage := "no session"
	if a.sess != nil {
		stage = a.sess.Stage().String()
	}
	return []string{
		fmt.Sprintf("screen: %s", a.current),
		fmt.Sprintf("focus: zone=%d index=%d depth=%d", a.focusStack.Zone(),
			a.focusStack.Index(), a.focusStack.Depth()),
		fmt.Sprintf("nav: state=%d width=%.1f", a.sidebar.State(), a.sidebar.CurrentWidth()),
		fmt.Sprintf("session: %s", stage),
		fmt.Sprintf("discovered: %d", len(a.DiscoveredHosts())),
	}
}

// Shutdown stops background workers and saves state. Called on exit.
func (a *App) Shutdown() {
	if a.sess != nil {
		a.sess.Stop()
	}
	if a.disc != nil {
		a.disc.Stop()
	}
	a.SaveConfig()
}
