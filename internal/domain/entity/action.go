package entity

// Console action names. These are the stable identifiers used in the keymap,
// the wire protocol, and the action history.
const (
	ActionOverlayDismiss = "overlay.dismiss"
	ActionPaletteToggle  = "palette.toggle"
	ActionHelpToggle     = "help.toggle"
	ActionViewDispatches = "view.dispatches"
	ActionViewTasks      = "view.tasks"
	ActionViewWorkers    = "view.workers"
	ActionViewRefresh    = "view.refresh"
	ActionLanguageCycle  = "language.cycle"
	ActionMonitorPause   = "monitor.pause"
)

// ActionSpec describes one console action: its stable name, the localization
// key of its description, and the chord it ships bound to.
type ActionSpec struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DefaultChord string `json:"default_chord"`
}

// ActionCatalog returns every console action in registration order. The order
// is significant: the dispatcher tries definitions first to last, so earlier
// entries win when chords collide.
func ActionCatalog() []ActionSpec {
	return []ActionSpec{
		{Name: ActionOverlayDismiss, Description: "action.overlay.dismiss", DefaultChord: "escape"},
		{Name: ActionPaletteToggle, Description: "action.palette.toggle", DefaultChord: "ctrl+k"},
		{Name: ActionHelpToggle, Description: "action.help.toggle", DefaultChord: "shift+?"},
		{Name: ActionViewDispatches, Description: "action.view.dispatches", DefaultChord: "d"},
		{Name: ActionViewTasks, Description: "action.view.tasks", DefaultChord: "t"},
		{Name: ActionViewWorkers, Description: "action.view.workers", DefaultChord: "w"},
		{Name: ActionViewRefresh, Description: "action.view.refresh", DefaultChord: "r"},
		{Name: ActionLanguageCycle, Description: "action.language.cycle", DefaultChord: "ctrl+l"},
		{Name: ActionMonitorPause, Description: "action.monitor.pause", DefaultChord: "space"},
	}
}

// LookupAction returns the catalog entry for the named action.
func LookupAction(name string) (ActionSpec, bool) {
	for _, spec := range ActionCatalog() {
		if spec.Name == name {
			return spec, true
		}
	}
	return ActionSpec{}, false
}
