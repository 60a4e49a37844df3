package debugmenu

import (
	"iter"
	"strings"
)

const pathSep = '/'

// CreateArrayItem creates or overwrites the leaf at path below parent. A zero
// parent means the root. Missing folders along the path are created.
//
// Overwriting a leaf replaces its value set. The selection survives when the
// previously active title exists in the new set, otherwise the leaf falls back
// to its default index.
func (m *Menu) CreateArrayItem(parent Handle, path, description string, titles []string, values Values, opts ...ItemOption) (Handle, error) {
	o := applyItemOptions(opts)
	if !o.editSet {
		o.editType = EditArray
	}
	return m.createLeaf(parent, path, description, titles, values, o)
}

// MustCreateArrayItem is like CreateArrayItem but panics on error.
func (m *Menu) MustCreateArrayItem(parent Handle, path, description string, titles []string, values Values, opts ...ItemOption) Handle {
	h, err := m.CreateArrayItem(parent, path, description, titles, values, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// CreateBoolItem creates a True/False leaf that writes straight into target.
func (m *Menu) CreateBoolItem(parent Handle, path, description string, target *bool, opts ...ItemOption) (Handle, error) {
	o := applyItemOptions(opts)
	if !o.editSet {
		o.editType = EditBool
	}
	return m.createLeaf(parent, path, description, boolValueTitles, BoolValues(target), o)
}

// MustCreateBoolItem is like CreateBoolItem but panics on error.
func (m *Menu) MustCreateBoolItem(parent Handle, path, description string, target *bool, opts ...ItemOption) Handle {
	h, err := m.CreateBoolItem(parent, path, description, target, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// CreatePresetItem creates a leaf whose values are one-shot actions. apply
// runs each time a value is committed.
func (m *Menu) CreatePresetItem(parent Handle, path, description string, titles []string, apply func(i int), opts ...ItemOption) (Handle, error) {
	o := applyItemOptions(opts)
	if !o.editSet {
		o.editType = EditPreset
	}
	return m.createLeaf(parent, path, description, titles, FuncValues(len(titles), apply), o)
}

// NewFolderItem returns the folder at title below parent, creating it and any
// missing ancestors. title may be a path.
func (m *Menu) NewFolderItem(parent Handle, title string) (Handle, error) {
	pidx, err := m.folderIndex(parent)
	if err != nil {
		return Handle{}, pathErrf("new folder", title, err)
	}
	idx, _, err := m.walk(pidx, title, true)
	if err != nil {
		return Handle{}, pathErrf("new folder", title, err)
	}
	return m.arena.handle(idx), nil
}

// GetItem resolves path below parent. Segments match exactly and
// case-sensitively. With createIfMissing, missing segments become folders.
func (m *Menu) GetItem(parent Handle, path string, createIfMissing bool) (Handle, error) {
	pidx, err := m.folderIndex(parent)
	if err != nil {
		return Handle{}, pathErrf("get", path, err)
	}
	dir, last, err := splitPath(path)
	if err != nil {
		return Handle{}, pathErrf("get", path, err)
	}
	folder, created, err := m.walk(pidx, dir, createIfMissing)
	if err != nil {
		return Handle{}, pathErrf("get", path, err)
	}
	idx := m.findChild(folder, last)
	if idx == noItem {
		if !createIfMissing {
			return Handle{}, pathErrf("get", path, ErrNotFound)
		}
		if idx, err = m.newChild(folder, KindFolder, last); err != nil {
			m.discard(created)
			return Handle{}, pathErrf("get", path, err)
		}
	}
	return m.arena.handle(idx), nil
}

// RemoveItem detaches h and frees it along with all its descendants. The
// order of the remaining siblings is kept. If the hot item was inside the
// removed subtree, the removed item's parent becomes hot.
func (m *Menu) RemoveItem(h Handle) error {
	it, err := m.arena.resolve(h)
	if err != nil {
		return err
	}
	idx := int32(h.index)
	if idx == m.root {
		return pathErrf("remove", "", ErrInvalidArgument)
	}
	parent := it.parent
	if m.isAncestorOrSelf(idx, m.hot) {
		m.hot = parent
	}
	m.unlink(idx)
	freed := m.freeSubtree(idx)
	m.filterDirty = true
	if m.debugEnabled() {
		m.log.Debug("removed item", "handle", h, "freed", freed)
	}
	return nil
}

// RemoveItemByPath removes the item at path below the root.
func (m *Menu) RemoveItemByPath(path string) error {
	h, err := m.GetItem(Handle{}, path, false)
	if err != nil {
		return err
	}
	return m.RemoveItem(h)
}

// Parent returns the folder containing h. The root has no parent.
func (m *Menu) Parent(h Handle) (Handle, error) {
	it, err := m.arena.resolve(h)
	if err != nil {
		return Handle{}, err
	}
	if it.parent == noItem {
		return Handle{}, ErrNotFound
	}
	return m.arena.handle(it.parent), nil
}

// Children iterates over the children of folder h in insertion order,
// including those hidden by the filter.
func (m *Menu) Children(h Handle) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		idx, err := m.folderIndex(h)
		if err != nil {
			return
		}
		for c := m.arena.items[idx].firstChild; c != noItem; {
			next := m.arena.items[c].next
			if !yield(m.arena.handle(c)) {
				return
			}
			c = next
		}
	}
}

// NumVisibleChildren returns how many children of folder h the current
// filter keeps.
func (m *Menu) NumVisibleChildren(h Handle) (int, error) {
	idx, err := m.folderIndex(h)
	if err != nil {
		return 0, err
	}
	m.ensureFiltered()
	return m.arena.items[idx].numVisible, nil
}

// Path returns the "/"-joined titles from the root to h.
func (m *Menu) Path(h Handle) string {
	if _, err := m.arena.resolve(h); err != nil {
		return ""
	}
	return string(m.appendPath(nil, int32(h.index)))
}

// AppendPath appends the path of h to dst.
func (m *Menu) AppendPath(dst []byte, h Handle) []byte {
	if _, err := m.arena.resolve(h); err != nil {
		return dst
	}
	return m.appendPath(dst, int32(h.index))
}

func (m *Menu) appendPath(dst []byte, idx int32) []byte {
	it := &m.arena.items[idx]
	if it.parent == noItem {
		return dst
	}
	if it.parent != m.root {
		dst = m.appendPath(dst, it.parent)
		dst = append(dst, pathSep)
	}
	return append(dst, it.title...)
}

// SetActiveIndex commits value i of leaf h, as if the user had picked it.
func (m *Menu) SetActiveIndex(h Handle, i int) error {
	it, err := m.arena.resolve(h)
	if err != nil {
		return err
	}
	if it.kind != KindLeaf {
		return pathErrf("set active", m.Path(h), ErrNotLeaf)
	}
	if i < 0 || i >= len(it.titles) {
		return pathErrf("set active", m.Path(h), ErrInvalidArgument)
	}
	it.active = false
	m.commit(int32(h.index), i)
	return nil
}

func (m *Menu) createLeaf(parent Handle, path, description string, titles []string, values Values, o itemOptions) (Handle, error) {
	if err := validateValues(titles, values, o.defaultIdx); err != nil {
		return Handle{}, pathErrf("create", path, err)
	}
	pidx, err := m.folderIndex(parent)
	if err != nil {
		return Handle{}, pathErrf("create", path, err)
	}
	dir, last, err := splitPath(path)
	if err != nil {
		return Handle{}, pathErrf("create", path, err)
	}
	folder, created, err := m.walk(pidx, dir, true)
	if err != nil {
		return Handle{}, pathErrf("create", path, err)
	}

	idx := m.findChild(folder, last)
	overwrite := idx != noItem
	if overwrite {
		if m.arena.items[idx].kind != KindLeaf {
			return Handle{}, pathErrf("create", path, ErrNotLeaf)
		}
	} else if idx, err = m.newChild(folder, KindLeaf, last); err != nil {
		m.discard(created)
		return Handle{}, pathErrf("create", path, err)
	}

	it := &m.arena.items[idx]
	prevTitle := it.ActiveTitle()
	if err := m.setLeafValues(it, description, titles, values, o); err != nil {
		switch {
		case created != noItem:
			m.discard(created)
		case !overwrite:
			m.discard(idx)
		}
		return Handle{}, pathErrf("create", path, err)
	}

	if overwrite {
		it.active = false
		if i := it.indexOfTitle(prevTitle); i >= 0 && prevTitle != "" {
			it.activeIdx = i
		} else {
			it.activeIdx = it.defaultIdx
		}
	} else {
		it.activeIdx = it.defaultIdx
	}
	if cur := values.Index(); cur >= 0 && cur != it.activeIdx {
		values.Apply(it.activeIdx)
	}
	it.hotIndex = it.activeIdx
	m.filterDirty = true
	return m.arena.handle(idx), nil
}

// setLeafValues copies titles and description into the arena. Spans and text
// already holding equal strings are reused.
func (m *Menu) setLeafValues(it *Item, description string, titles []string, values Values, o itemOptions) error {
	if it.desc != description {
		s, err := m.arena.copyString(description)
		if err != nil {
			return err
		}
		it.desc = s
	}

	spans := it.titles
	if len(spans) >= len(titles) {
		spans = spans[:len(titles)]
	} else {
		var err error
		if spans, err = m.arena.allocSpans(len(titles)); err != nil {
			return err
		}
	}
	for i, t := range titles {
		if spans[i] == t {
			continue
		}
		s, err := m.arena.copyString(t)
		if err != nil {
			return err
		}
		spans[i] = s
	}
	it.titles = spans

	it.values = values
	it.editType = o.editType
	it.observer = o.observer
	it.userData = o.userData
	switch {
	case o.defaultIdx >= 0:
		it.defaultIdx = o.defaultIdx
	case values.Index() >= 0:
		it.defaultIdx = values.Index()
	default:
		it.defaultIdx = 0
	}
	return nil
}

func validateValues(titles []string, values Values, defaultIdx int) error {
	if len(titles) == 0 || values == nil || values.Len() != len(titles) {
		return ErrInvalidArgument
	}
	if defaultIdx < -1 || defaultIdx >= len(titles) {
		return ErrInvalidArgument
	}
	for _, t := range titles {
		if t == "" || strings.ContainsAny(t, "\t\n") {
			return ErrInvalidArgument
		}
	}
	return nil
}

// splitPath splits path into its folder part and final segment.
func splitPath(path string) (dir, last string, err error) {
	if path == "" {
		return "", "", ErrInvalidArgument
	}
	i := strings.LastIndexByte(path, pathSep)
	dir, last = path[:max(i, 0)], path[i+1:]
	if !validSegment(last) || (i >= 0 && dir == "") {
		return "", "", ErrInvalidArgument
	}
	return dir, last, nil
}

func validSegment(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\t\n")
}

// walk follows the segments of dir from folder start. An empty dir is start
// itself. The second result is the topmost folder this call created, or
// noItem; on error nothing it created stays in the tree.
func (m *Menu) walk(start int32, dir string, create bool) (int32, int32, error) {
	cur, created := start, noItem
	fail := func(err error) (int32, int32, error) {
		m.discard(created)
		return noItem, noItem, err
	}
	for dir != "" {
		seg := dir
		if i := strings.IndexByte(dir, pathSep); i >= 0 {
			seg, dir = dir[:i], dir[i+1:]
			if dir == "" {
				return fail(ErrInvalidArgument)
			}
		} else {
			dir = ""
		}
		if !validSegment(seg) {
			return fail(ErrInvalidArgument)
		}

		child := m.findChild(cur, seg)
		switch {
		case child == noItem && !create:
			return fail(ErrNotFound)
		case child == noItem:
			var err error
			if child, err = m.newChild(cur, KindFolder, seg); err != nil {
				return fail(err)
			}
			if created == noItem {
				created = child
			}
		case m.arena.items[child].kind != KindFolder:
			return fail(ErrNotFolder)
		}
		cur = child
	}
	return cur, created, nil
}

// discard unlinks and frees the subtree at idx. Text bytes are not returned.
func (m *Menu) discard(idx int32) {
	if idx == noItem {
		return
	}
	m.unlink(idx)
	m.freeSubtree(idx)
	m.filterDirty = true
}

func (m *Menu) findChild(folder int32, title string) int32 {
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		if m.arena.items[c].title == title {
			return c
		}
	}
	return noItem
}

// newChild appends a new item to folder.
func (m *Menu) newChild(folder int32, kind ItemKind, title string) (int32, error) {
	idx, err := m.arena.alloc()
	if err != nil {
		return noItem, err
	}
	s, err := m.arena.copyString(title)
	if err != nil {
		m.arena.free(idx)
		return noItem, err
	}

	it := &m.arena.items[idx]
	p := &m.arena.items[folder]
	it.kind = kind
	it.title = s
	it.parent = folder
	it.depth = p.depth + 1
	it.prev = p.lastChild
	if p.lastChild != noItem {
		m.arena.items[p.lastChild].next = idx
	} else {
		p.firstChild = idx
	}
	p.lastChild = idx
	p.numChildren++
	p.numVisible++
	m.filterDirty = true
	return idx, nil
}

// unlink detaches idx from its parent's child list.
func (m *Menu) unlink(idx int32) {
	it := &m.arena.items[idx]
	p := &m.arena.items[it.parent]
	if it.prev != noItem {
		m.arena.items[it.prev].next = it.next
	} else {
		p.firstChild = it.next
	}
	if it.next != noItem {
		m.arena.items[it.next].prev = it.prev
	} else {
		p.lastChild = it.prev
	}
	p.numChildren--
	if it.visible {
		p.numVisible--
	}
	assert(p.numChildren >= 0, "negative child count")
	it.parent, it.next, it.prev = noItem, noItem, noItem
}

func (m *Menu) freeSubtree(idx int32) int {
	n := 0
	for c := m.arena.items[idx].firstChild; c != noItem; {
		next := m.arena.items[c].next
		n += m.freeSubtree(c)
		c = next
	}
	m.arena.free(idx)
	return n + 1
}

// folderIndex resolves h as a folder. The zero Handle is the root.
func (m *Menu) folderIndex(h Handle) (int32, error) {
	if h.IsZero() {
		return m.root, nil
	}
	it, err := m.arena.resolve(h)
	if err != nil {
		return noItem, err
	}
	if it.kind != KindFolder {
		return noItem, ErrNotFolder
	}
	return int32(h.index), nil
}

func (m *Menu) isAncestorOrSelf(anc, idx int32) bool {
	for ; idx != noItem; idx = m.arena.items[idx].parent {
		if idx == anc {
			return true
		}
	}
	return false
}
