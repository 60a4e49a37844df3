package debugmenu

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type overrideDoc struct {
	Version   int        `msgpack:"v"`
	Overrides []Override `msgpack:"o"`
}

// bytesAppender is an io.Writer appending to a byte slice.
type bytesAppender struct {
	Buf []byte
}

func (w *bytesAppender) Write(p []byte) (int, error) {
	w.Buf = append(w.Buf, p...)
	return len(p), nil
}

// AppendOverrides appends the overrides to dst as a msgpack document
// {v: version, o: [{p: path, t: value}, ...]}.
func (m *Menu) AppendOverrides(dst []byte) ([]byte, error) {
	doc := overrideDoc{Version: codecVersion, Overrides: m.Overrides()}
	w := bytesAppender{dst}
	enc := msgpack.GetEncoder()
	enc.Reset(&w)
	err := enc.Encode(&doc)
	msgpack.PutEncoder(enc)
	if err != nil {
		return dst, fmt.Errorf("encode overrides: %w", err)
	}
	return w.Buf, nil
}

// MarshalOverrides returns the overrides as a msgpack document.
func (m *Menu) MarshalOverrides() ([]byte, error) {
	return m.AppendOverrides(nil)
}

// UnmarshalOverrides applies a document produced by MarshalOverrides and
// returns how many overrides took effect.
func (m *Menu) UnmarshalOverrides(data []byte) (int, error) {
	var doc overrideDoc
	var r bytes.Reader
	r.Reset(data)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	err := dec.Decode(&doc)
	msgpack.PutDecoder(dec)
	if err != nil {
		return 0, fmt.Errorf("decode overrides: %w: %w", ErrMalformed, err)
	}
	if doc.Version != codecVersion {
		return 0, fmt.Errorf("version %d: %w", doc.Version, ErrUnsupportedVersion)
	}
	return m.ApplyOverrides(doc.Overrides), nil
}

// ApplyOverrides loads each override and returns how many took effect.
func (m *Menu) ApplyOverrides(overrides []Override) int {
	n := 0
	for _, o := range overrides {
		if m.LoadItem(o.Path, o.Value) {
			n++
		}
	}
	return n
}
