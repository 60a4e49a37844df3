package debugmenu

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// RequestKind selects what a queued request does.
type RequestKind uint8

const (
	RequestArray RequestKind = iota
	RequestBool
	RequestPreset
	RequestFolder
	RequestRemove
)

func (k RequestKind) String() string {
	switch k {
	case RequestArray:
		return "array"
	case RequestBool:
		return "bool"
	case RequestPreset:
		return "preset"
	case RequestFolder:
		return "folder"
	case RequestRemove:
		return "remove"
	default:
		return fmt.Sprintf("RequestKind(%d)", k)
	}
}

// CreateRequest is a tree mutation recorded on one goroutine and applied
// on the goroutine that owns the menu. Fields not used by Kind are ignored.
type CreateRequest struct {
	Kind        RequestKind
	Parent      Handle
	Path        string
	Description string
	Titles      []string  // RequestArray, RequestPreset
	Values      Values    // RequestArray
	Target      *bool     // RequestBool
	Apply       func(int) // RequestPreset
	Options     []ItemOption
}

// Queue is a fixed-capacity single-producer single-consumer ring of
// creation requests. One goroutine may Push while the menu's owner Drains.
//
// The producer publishes a slot by storing tail after writing it; the
// consumer loads tail before reading the slot, so the write happens before
// the read. The same holds for head in the other direction.
type Queue struct {
	slots []CreateRequest
	mask  uint64
	head  atomic.Uint64 // next slot to read, written by the consumer
	tail  atomic.Uint64 // next slot to write, written by the producer
}

// NewQueue creates a queue holding at least capacity requests.
func NewQueue(capacity int) *Queue {
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &Queue{
		slots: make([]CreateRequest, n),
		mask:  uint64(n - 1),
	}
}

// Cap returns the number of slots.
func (q *Queue) Cap() int {
	return len(q.slots)
}

// Len returns the number of pending requests. Only the producer or the
// consumer may call it; a third goroutine can observe a torn count.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Push enqueues req. It fails with ErrQueueFull when all slots are pending.
// Only one goroutine may call Push.
func (q *Queue) Push(req CreateRequest) error {
	tail := q.tail.Load()
	if tail-q.head.Load() >= uint64(len(q.slots)) {
		return ErrQueueFull
	}
	q.slots[tail&q.mask] = req
	q.tail.Store(tail + 1)
	return nil
}

// Drain applies every pending request to m in push order and returns how
// many succeeded. Failed requests are skipped; their errors are joined.
// Only the goroutine owning m may call Drain.
func (q *Queue) Drain(m *Menu) (int, error) {
	var errs []error
	n := 0
	head := q.head.Load()
	tail := q.tail.Load()
	for ; head != tail; head++ {
		slot := &q.slots[head&q.mask]
		req := *slot
		*slot = CreateRequest{}
		q.head.Store(head + 1)

		if err := m.apply(req); err != nil {
			errs = append(errs, fmt.Errorf("%s request: %w", req.Kind, err))
			continue
		}
		n++
	}
	if len(errs) > 0 {
		m.log.Debug("queue drain failures", "failed", len(errs), "applied", n)
	}
	return n, errors.Join(errs...)
}

func (m *Menu) apply(req CreateRequest) error {
	var err error
	switch req.Kind {
	case RequestArray:
		_, err = m.CreateArrayItem(req.Parent, req.Path, req.Description, req.Titles, req.Values, req.Options...)
	case RequestBool:
		_, err = m.CreateBoolItem(req.Parent, req.Path, req.Description, req.Target, req.Options...)
	case RequestPreset:
		_, err = m.CreatePresetItem(req.Parent, req.Path, req.Description, req.Titles, req.Apply, req.Options...)
	case RequestFolder:
		_, err = m.NewFolderItem(req.Parent, req.Path)
	case RequestRemove:
		var h Handle
		if h, err = m.GetItem(req.Parent, req.Path, false); err == nil {
			err = m.RemoveItem(h)
		}
	default:
		err = ErrInvalidArgument
	}
	return err
}
