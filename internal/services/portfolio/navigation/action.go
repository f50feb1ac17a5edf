package navigation

// RootPath is where compound root targets navigate before scrolling.
const RootPath = "/"

// Action describes what activating a target does.
//
// Navigate is empty when the viewer stays on the current page. When
// PreventDefault is false the link's own navigation proceeds and Navigate
// repeats its href. AfterMount defers ScrollTo until the destination page
// has mounted.
type Action struct {
	CloseMenu      bool
	PreventDefault bool
	Navigate       string
	ScrollTo       string
	AfterMount     bool
}

// Resolve decides how activating t at loc behaves.
func Resolve(t Target, loc Location) Action {
	switch t.Kind {
	case KindFragment:
		return Action{CloseMenu: true, PreventDefault: true, ScrollTo: t.Fragment}
	case KindCompound:
		if !IsRoot(t.Path) {
			break
		}
		if IsRoot(loc.Path) {
			return Action{CloseMenu: true, PreventDefault: true, ScrollTo: t.Fragment}
		}
		return Action{
			CloseMenu:      true,
			PreventDefault: true,
			Navigate:       RootPath,
			ScrollTo:       t.Fragment,
			AfterMount:     true,
		}
	}
	return Action{CloseMenu: true, Navigate: t.Href}
}
