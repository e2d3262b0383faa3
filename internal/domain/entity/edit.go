package entity

import "fmt"

// Edit is a single user edit to the editor state.
// The set of implementations is closed; Apply is the only place they are interpreted.
type Edit interface {
	isEdit()
}

// Component edits.
type (
	SetProtocol struct{ Protocol Protocol }
	SetHostname struct{ Hostname string }
	SetPort     struct{ Port string }
	SetPathname struct{ Pathname string }
	SetFragment struct{ Fragment string }
)

// Query item edits. Index is the item's position in the list.
type (
	SetKey struct {
		Index int
		Key   string
	}
	SetValue struct {
		Index int
		Value string
	}
	SetEnabled struct {
		Index   int
		Enabled bool
	}
	ToggleItem struct{ Index int }
	AddItem    struct{}
)

func (SetProtocol) isEdit() {}
func (SetHostname) isEdit() {}
func (SetPort) isEdit()     {}
func (SetPathname) isEdit() {}
func (SetFragment) isEdit() {}
func (SetKey) isEdit()      {}
func (SetValue) isEdit()    {}
func (SetEnabled) isEdit()  {}
func (ToggleItem) isEdit()  {}
func (AddItem) isEdit()     {}

// EditorState is the ephemeral state of one editing session.
type EditorState struct {
	Components URLComponents
	Items      *QueryItemList
}

// NewEditorState returns a state with default components and no items.
func NewEditorState() *EditorState {
	return &EditorState{
		Components: DefaultURLComponents(),
		Items:      NewQueryItemList(nil),
	}
}

// Apply dispatches one edit. A failed edit leaves the state unchanged.
func (s *EditorState) Apply(e Edit) error {
	switch e := e.(type) {
	case SetProtocol:
		if !e.Protocol.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidProtocol, e.Protocol)
		}
		s.Components.Protocol = e.Protocol
	case SetHostname:
		s.Components.Hostname = e.Hostname
	case SetPort:
		if err := ValidatePort(e.Port); err != nil {
			return err
		}
		s.Components.Port = e.Port
	case SetPathname:
		s.Components.Pathname = e.Pathname
	case SetFragment:
		s.Components.Fragment = e.Fragment
	case SetKey:
		return s.Items.SetKey(e.Index, e.Key)
	case SetValue:
		return s.Items.SetValue(e.Index, e.Value)
	case SetEnabled:
		return s.Items.SetEnabled(e.Index, e.Enabled)
	case ToggleItem:
		return s.Items.Toggle(e.Index)
	case AddItem:
		s.Items.Add()
	default:
		return fmt.Errorf("unknown edit %T", e)
	}
	return nil
}
