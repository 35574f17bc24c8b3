package pos

// KeyEvent is a terminal key reduced to what the dispatcher cares about.
// Key carries the symbolic name ("esc", "enter", "f2", ...); Rune and
// Printable describe single printable characters. FromInput marks keys that
// arrived while a text input owned the focus.
type KeyEvent struct {
	Key       string
	Rune      rune
	Printable bool
	FromInput bool
}

// Action is what the dispatcher asks the shell to do after a key was
// handled. ActionUnhandled means no rule claimed the key and the shell is
// free to route it elsewhere, typically into the search input.
type Action int

const (
	ActionNone Action = iota
	ActionUnhandled
	ActionCloseScreen
	ActionCommit
	ActionOpenPicker
	ActionForwardPicker
	ActionItemAdded
	ActionPickerClosed
	ActionEditStarted
	ActionEditEnded
	ActionEditInput
)

type rule struct {
	name  string
	match func(*Session, KeyEvent) bool
	apply func(*Session, KeyEvent) Action
}

// rules is the ordered key dispatch table. The first rule whose match
// returns true wins; order encodes priority, with the modal picker on top,
// then field editing, then the screen-level bindings.
var rules = []rule{
	{
		name: "picker",
		match: func(s *Session, _ KeyEvent) bool {
			return s.PickerOpen()
		},
		apply: func(s *Session, ev KeyEvent) Action {
			switch ev.Key {
			case "esc":
				s.CancelPicker()
				return ActionPickerClosed
			case "enter":
				if _, ok := s.ConfirmPicker(); ok {
					return ActionItemAdded
				}
				return ActionNone
			case "up":
				s.Picker.Move(-1)
				return ActionNone
			case "down":
				s.Picker.Move(1)
				return ActionNone
			case "pgup":
				s.Picker.Move(-10)
				return ActionNone
			case "pgdown":
				s.Picker.Move(10)
				return ActionNone
			case "home":
				s.Picker.First()
				return ActionNone
			case "end":
				s.Picker.Last()
				return ActionNone
			}
			return ActionForwardPicker
		},
	},
	{
		name: "edit",
		match: func(s *Session, ev KeyEvent) bool {
			return s.Edit != EditNone && ev.FromInput
		},
		apply: func(s *Session, ev KeyEvent) Action {
			switch ev.Key {
			case "enter", "esc":
				s.ExitEdit()
				return ActionEditEnded
			}
			return ActionEditInput
		},
	},
	{
		name: "close",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Key == "esc" && s.Edit == EditNone
		},
		apply: func(_ *Session, _ KeyEvent) Action {
			return ActionCloseScreen
		},
	},
	{
		name: "type-to-pick",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Printable && s.Edit == EditNone && len(s.Matches()) > 0
		},
		apply: func(s *Session, _ KeyEvent) Action {
			s.OpenPicker()
			return ActionOpenPicker
		},
	},
	{
		name: "enter-to-pick",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Key == "enter" && len(s.Matches()) > 0
		},
		apply: func(s *Session, _ KeyEvent) Action {
			s.OpenPicker()
			return ActionOpenPicker
		},
	},
	{
		name: "save",
		match: func(_ *Session, ev KeyEvent) bool {
			return ev.Key == "f2"
		},
		apply: func(s *Session, _ KeyEvent) Action {
			if s.Invoice.Empty() {
				return ActionNone
			}
			return ActionCommit
		},
	},
	{
		name: "edit-quantity",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Key == "f4" && !s.Invoice.Empty()
		},
		apply: func(s *Session, _ KeyEvent) Action {
			s.EnterEdit(EditQuantity)
			return ActionEditStarted
		},
	},
	{
		name: "edit-discount",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Key == "f5" && !s.Invoice.Empty()
		},
		apply: func(s *Session, _ KeyEvent) Action {
			s.EnterEdit(EditDiscount)
			return ActionEditStarted
		},
	},
	{
		name: "line-cursor",
		match: func(s *Session, ev KeyEvent) bool {
			return (ev.Key == "up" || ev.Key == "down") && !s.Invoice.Empty()
		},
		apply: func(s *Session, ev KeyEvent) Action {
			if ev.Key == "up" {
				s.Invoice.MoveCursor(-1)
			} else {
				s.Invoice.MoveCursor(1)
			}
			return ActionNone
		},
	},
	{
		name: "delete-line",
		match: func(s *Session, ev KeyEvent) bool {
			return ev.Key == "delete" && !s.Invoice.Empty() && s.Edit == EditNone
		},
		apply: func(s *Session, _ KeyEvent) Action {
			s.Invoice.Remove(s.Invoice.Cursor)
			return ActionNone
		},
	},
}

// Dispatch runs the key through the rule table and mutates the session
// accordingly. Unclaimed keys come back as ActionUnhandled.
func Dispatch(s *Session, ev KeyEvent) Action {
	for _, r := range rules {
		if r.match(s, ev) {
			return r.apply(s, ev)
		}
	}
	return ActionUnhandled
}
