package debugmenu

// ItemKind distinguishes folders from leaves.
type ItemKind uint8

const (
	KindFolder ItemKind = iota
	KindLeaf
)

func (k ItemKind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "leaf"
}

// EditType selects how a leaf reacts to activation.
type EditType uint8

const (
	// EditArray cycles through a list of values; Into commits the value.
	EditArray EditType = iota
	// EditBool toggles between True and False; every Into toggles and commits.
	EditBool
	// EditPreset applies one-shot values (actions); the leaf never stays active.
	EditPreset
	// EditCustom behaves like EditArray but tells renderers the observer draws
	// or interprets the value itself.
	EditCustom
)

func (t EditType) String() string {
	switch t {
	case EditBool:
		return "bool"
	case EditPreset:
		return "preset"
	case EditCustom:
		return "custom"
	default:
		return "array"
	}
}

// Item is a folder or leaf node. Items live in the menu's arena; obtain one
// with Menu.Item and do not keep the pointer across structural mutations,
// keep the Handle instead.
type Item struct {
	gen  uint32
	live bool
	kind ItemKind

	parent     int32
	firstChild int32
	lastChild  int32
	next       int32 // next sibling, or next free slot
	prev       int32
	depth      int

	title string
	desc  string

	// Folder
	numChildren int
	numVisible  int
	open        bool

	// Leaf
	titles     []string
	values     Values
	defaultIdx int
	hotIndex   int
	activeIdx  int
	active     bool
	editType   EditType
	observer   ItemObserver
	userData   any

	// Filter
	matched bool
	visible bool

	// Animation
	openAnim float32 // 0 closed .. 1 open (folders)
	hotAnim  float32 // highlight fade
}

// Kind returns whether the item is a folder or a leaf.
func (it *Item) Kind() ItemKind { return it.kind }

// IsFolder reports whether the item is a folder.
func (it *Item) IsFolder() bool { return it.kind == KindFolder }

// Title returns the item's own path segment.
func (it *Item) Title() string { return it.title }

// Description returns the help text shown for the hot item.
func (it *Item) Description() string { return it.desc }

// Depth returns the number of ancestors below the root (root children are 0).
func (it *Item) Depth() int { return it.depth }

// NumChildren returns the total number of children of a folder.
func (it *Item) NumChildren() int { return it.numChildren }

// NumVisibleChildren returns the number of children not hidden by the filter.
// Use Menu.NumVisibleChildren to get a value that reflects pending changes.
func (it *Item) NumVisibleChildren() int { return it.numVisible }

// IsOpen reports whether a folder is expanded.
func (it *Item) IsOpen() bool { return it.open }

// Visible reports whether the filter keeps the item.
func (it *Item) Visible() bool { return it.visible }

// ValueTitles returns the display strings of a leaf's values.
// The slice is owned by the menu.
func (it *Item) ValueTitles() []string { return it.titles }

// NumValues returns the number of values of a leaf.
func (it *Item) NumValues() int { return len(it.titles) }

// DefaultIndex returns the index the leaf started with.
func (it *Item) DefaultIndex() int { return it.defaultIdx }

// HotIndex returns the value under the cursor while editing.
func (it *Item) HotIndex() int { return it.hotIndex }

// ActiveIndex returns the committed value index.
func (it *Item) ActiveIndex() int { return it.activeIdx }

// IsActive reports whether the leaf is in editing mode.
func (it *Item) IsActive() bool { return it.active }

// EditType returns the leaf's edit behaviour.
func (it *Item) EditType() EditType { return it.editType }

// UserData returns the opaque value attached with WithUserData.
func (it *Item) UserData() any { return it.userData }

// ActiveTitle returns the title of the committed value, or "".
func (it *Item) ActiveTitle() string {
	if it.activeIdx < 0 || it.activeIdx >= len(it.titles) {
		return ""
	}
	return it.titles[it.activeIdx]
}

// HotTitle returns the title of the value under the cursor, or "".
func (it *Item) HotTitle() string {
	if it.hotIndex < 0 || it.hotIndex >= len(it.titles) {
		return ""
	}
	return it.titles[it.hotIndex]
}

// indexOfTitle returns the value index whose title equals s, or -1.
func (it *Item) indexOfTitle(s string) int {
	for i, t := range it.titles {
		if t == s {
			return i
		}
	}
	return -1
}

// ChangeEvent describes a value change on a leaf.
type ChangeEvent struct {
	Menu      *Menu
	Item      Handle
	Index     int    // Value index now applied
	Title     string // Title of that value
	Committed bool   // False while cycling in editing mode, true on commit or load
	UserData  any
}

// ItemObserver is notified every time a leaf's applied value changes,
// including each step while cycling in editing mode.
type ItemObserver interface {
	ItemChanged(ev ChangeEvent)
}

// ObserverFunc adapts a function to ItemObserver.
type ObserverFunc func(ev ChangeEvent)

// ItemChanged calls f(ev).
func (f ObserverFunc) ItemChanged(ev ChangeEvent) { f(ev) }

// ItemOption configures a leaf at creation.
type ItemOption func(*itemOptions)

type itemOptions struct {
	defaultIdx int
	editType   EditType
	editSet    bool
	observer   ItemObserver
	userData   any
}

// WithDefaultIndex sets the default value index. Without it the default is
// the value the bound target currently holds, or 0.
func WithDefaultIndex(i int) ItemOption {
	return func(o *itemOptions) { o.defaultIdx = i }
}

// WithEditType overrides the leaf's edit type.
func WithEditType(t EditType) ItemOption {
	return func(o *itemOptions) { o.editType = t; o.editSet = true }
}

// WithObserver attaches an observer fired on every value change.
func WithObserver(obs ItemObserver) ItemOption {
	return func(o *itemOptions) { o.observer = obs }
}

// WithUserData attaches an opaque value passed back in ChangeEvent.
func WithUserData(v any) ItemOption {
	return func(o *itemOptions) { o.userData = v }
}

func applyItemOptions(opts []ItemOption) itemOptions {
	o := itemOptions{defaultIdx: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
