package debugmenu

import (
	"bytes"
	"fmt"
	"strconv"
)

// Save format: a version line followed by one "path\tvalue\n" record per
// leaf whose active value differs from its default, in tree order. Only
// selections are stored; the tree is rebuilt by replaying creation calls.
const (
	codecMagic   = "dmenu "
	codecVersion = 1
	codecHeader  = "dmenu 1\n"
)

// Override is a saved selection.
type Override struct {
	Path  string `msgpack:"p" yaml:"path" toml:"path"`
	Value string `msgpack:"t" yaml:"value" toml:"value"`
}

// overridden reports whether leaf idx is saved.
func (m *Menu) overridden(idx int32) bool {
	it := &m.arena.items[idx]
	return it.kind == KindLeaf && it.editType != EditPreset && it.activeIdx != it.defaultIdx
}

// eachOverride calls fn for every saved leaf in tree order until fn
// returns false.
func (m *Menu) eachOverride(folder int32, fn func(idx int32) bool) bool {
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		if m.overridden(c) && !fn(c) {
			return false
		}
		if m.arena.items[c].kind == KindFolder && !m.eachOverride(c, fn) {
			return false
		}
	}
	return true
}

func (m *Menu) recordLen(idx int32) int {
	return m.pathLen(idx) + 1 + len(m.arena.items[idx].ActiveTitle()) + 1
}

func (m *Menu) pathLen(idx int32) int {
	it := &m.arena.items[idx]
	if it.parent == m.root || it.parent == noItem {
		return len(it.title)
	}
	return m.pathLen(it.parent) + 1 + len(it.title)
}

// SaveSize returns the number of bytes Save needs.
func (m *Menu) SaveSize() int {
	n := len(codecHeader)
	m.eachOverride(m.root, func(idx int32) bool {
		n += m.recordLen(idx)
		return true
	})
	return n
}

// Save writes the overrides into buf and returns the number of bytes
// written. It never writes past len(buf): if buf is too small it stops
// after the last complete record and returns ErrBufferTooSmall.
func (m *Menu) Save(buf []byte) (int, error) {
	if len(buf) < len(codecHeader) {
		return 0, ErrBufferTooSmall
	}
	n := copy(buf, codecHeader)
	truncated := !m.eachOverride(m.root, func(idx int32) bool {
		size := m.recordLen(idx)
		if n+size > len(buf) {
			return false
		}
		rec := m.appendPath(buf[n:n], idx)
		rec = append(rec, '\t')
		rec = append(rec, m.arena.items[idx].ActiveTitle()...)
		rec = append(rec, '\n')
		assert(len(rec) == size, "record length mismatch")
		n += size
		return true
	})
	if truncated {
		return n, ErrBufferTooSmall
	}
	return n, nil
}

// AppendSave appends the saved form to dst.
func (m *Menu) AppendSave(dst []byte) []byte {
	dst = append(dst, codecHeader...)
	m.eachOverride(m.root, func(idx int32) bool {
		dst = m.appendPath(dst, idx)
		dst = append(dst, '\t')
		dst = append(dst, m.arena.items[idx].ActiveTitle()...)
		dst = append(dst, '\n')
		return true
	})
	return dst
}

// SaveFunc calls fn for each override instead of writing a buffer, and
// returns the number of overrides visited. path is only valid during the
// call. Returning false from fn stops the walk.
func (m *Menu) SaveFunc(fn func(path, value string) bool) int {
	var scratch [256]byte
	count := 0
	m.eachOverride(m.root, func(idx int32) bool {
		count++
		p := m.appendPath(scratch[:0], idx)
		return fn(unsafeString(p), m.arena.items[idx].ActiveTitle())
	})
	return count
}

// Overrides returns a copy of all overrides in tree order.
func (m *Menu) Overrides() []Override {
	var out []Override
	m.eachOverride(m.root, func(idx int32) bool {
		out = append(out, Override{
			Path:  string(m.appendPath(nil, idx)),
			Value: m.arena.items[idx].ActiveTitle(),
		})
		return true
	})
	return out
}

// Load applies saved overrides to the current tree and returns how many
// took effect. Records naming unknown items or values are skipped.
func (m *Menu) Load(data []byte) (int, error) {
	rest, err := checkHeader(data)
	if err != nil {
		return 0, err
	}

	applied := 0
	for line := 1; len(rest) > 0; line++ {
		rec := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			rec, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		rec = bytes.TrimSuffix(rec, []byte{'\r'})
		if len(rec) == 0 {
			continue
		}
		tab := bytes.IndexByte(rec, '\t')
		if tab <= 0 {
			return applied, fmt.Errorf("line %d: %w", line+1, ErrMalformed)
		}
		if m.LoadItem(unsafeString(rec[:tab]), unsafeString(rec[tab+1:])) {
			applied++
		}
	}
	return applied, nil
}

func checkHeader(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte(codecMagic)) {
		return nil, ErrMalformed
	}
	data = data[len(codecMagic):]
	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	v, err := strconv.Atoi(string(bytes.TrimSuffix(data[:end], []byte{'\r'})))
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", data[:end], ErrMalformed)
	}
	if v != codecVersion {
		return nil, fmt.Errorf("version %d: %w", v, ErrUnsupportedVersion)
	}
	return data[min(end+1, len(data)):], nil
}

// LoadItem selects the value titled value on the leaf at path. It reports
// false, without error, if either does not exist.
func (m *Menu) LoadItem(path, value string) bool {
	h, err := m.GetItem(Handle{}, path, false)
	if err != nil {
		if m.debugEnabled() {
			m.log.Debug("load: no such item", "path", path)
		}
		return false
	}
	idx := int32(h.index)
	it := &m.arena.items[idx]
	if it.kind != KindLeaf || it.editType == EditPreset {
		return false
	}
	i := it.indexOfTitle(value)
	if i < 0 {
		if m.debugEnabled() {
			m.log.Debug("load: no such value", "path", path, "value", value)
		}
		return false
	}
	if m.hot == idx {
		it.active = false
	}
	m.commit(idx, i)
	return true
}
