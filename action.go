package debugmenu

// Action is a logical navigation command. Hosts either call Menu.Do
// directly or let Menu.HandleInput translate buttons through an ActionMap.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionOpen
	ActionClose
	ActionNext       // next row in display order; cycles values while editing
	ActionPrev       // previous row; cycles values while editing
	ActionNextLong   // next folder, skipping descendants
	ActionPrevLong   // previous folder
	ActionInto       // open folder / activate leaf / commit value
	ActionIntoDirect // change and commit a leaf value in one step
	ActionParent     // cancel edit / collapse / move to parent
	ActionValueNext  // next value (editing only)
	ActionValuePrev  // previous value (editing only)
	ActionFilter     // enable filtering
	ActionBackspace  // delete the last filter character, or stop filtering
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionToggle:     "toggle",
	ActionOpen:       "open",
	ActionClose:      "close",
	ActionNext:       "next",
	ActionPrev:       "prev",
	ActionNextLong:   "next_long",
	ActionPrevLong:   "prev_long",
	ActionInto:       "into",
	ActionIntoDirect: "into_direct",
	ActionParent:     "parent",
	ActionValueNext:  "value_next",
	ActionValuePrev:  "value_prev",
	ActionFilter:     "filter",
	ActionBackspace:  "backspace",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "invalid"
	}
	return actionNames[a]
}

// ParseAction converts a name such as "next_long" to an Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && Action(a) != ActionNone {
			return Action(a), true
		}
	}
	return ActionNone, false
}

// repeats reports whether holding a bound button re-triggers the action.
func (a Action) repeats() bool {
	switch a {
	case ActionNext, ActionPrev, ActionNextLong, ActionPrevLong,
		ActionValueNext, ActionValuePrev, ActionBackspace:
		return true
	}
	return false
}

// actionPriority is the order in which HandleInput checks actions. Value
// cycling comes first so that Left/Right edit values while a leaf is active
// and navigate otherwise. A button fires at most one action per frame.
var actionPriority = [...]Action{
	ActionToggle,
	ActionOpen,
	ActionClose,
	ActionValueNext,
	ActionValuePrev,
	ActionFilter,
	ActionBackspace,
	ActionNext,
	ActionPrev,
	ActionNextLong,
	ActionPrevLong,
	ActionIntoDirect,
	ActionInto,
	ActionParent,
}

// ActionMap binds buttons to actions. One button may be bound to several
// actions; the first applicable one in priority order wins.
type ActionMap [ActionCount][]Button

// DefaultActionMap returns the standard keyboard/gamepad layout.
func DefaultActionMap() ActionMap {
	var m ActionMap
	m.Bind(ActionToggle, ButtonToggle)
	m.Bind(ActionNext, ButtonDown)
	m.Bind(ActionPrev, ButtonUp)
	m.Bind(ActionNextLong, ButtonPageDown)
	m.Bind(ActionPrevLong, ButtonPageUp)
	m.Bind(ActionInto, ButtonAccept, ButtonRight)
	m.Bind(ActionIntoDirect, ButtonAcceptDirect)
	m.Bind(ActionParent, ButtonBack, ButtonLeft)
	m.Bind(ActionValueNext, ButtonRight)
	m.Bind(ActionValuePrev, ButtonLeft)
	m.Bind(ActionFilter, ButtonFilter)
	m.Bind(ActionBackspace, ButtonBackspace)
	return m
}

// Bind replaces the buttons bound to a.
func (m *ActionMap) Bind(a Action, buttons ...Button) {
	if a <= ActionNone || a >= ActionCount {
		return
	}
	m[a] = append([]Button(nil), buttons...)
}

// Buttons returns the buttons bound to a.
func (m *ActionMap) Buttons(a Action) []Button {
	if a <= ActionNone || a >= ActionCount {
		return nil
	}
	return m[a]
}
