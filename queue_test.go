package debugmenu_test

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/go-theft-auto/debugmenu"
)

func TestQueueCapacity(t *testing.T) {
	q := debugmenu.NewQueue(5)
	if q.Cap() != 8 {
		t.Errorf("Expected capacity rounded to 8, got %d", q.Cap())
	}
	for i := range 8 {
		if err := q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestFolder, Path: fmt.Sprintf("F%d", i)}); err != nil {
			t.Fatalf("Push %d returned error: %v", i, err)
		}
	}
	if err := q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestFolder, Path: "Extra"}); !errors.Is(err, debugmenu.ErrQueueFull) {
		t.Errorf("Expected ErrQueueFull, got %v", err)
	}
	if q.Len() != 8 {
		t.Errorf("Expected 8 pending, got %d", q.Len())
	}

	m := newTestMenu(t)
	n, err := q.Drain(m)
	if err != nil || n != 8 {
		t.Errorf("Expected 8 applied, got %d %v", n, err)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	if got := childTitles(t, m, m.Root()); len(got) != 8 || got[0] != "F0" || got[7] != "F7" {
		t.Errorf("unexpected children %v", got)
	}
}

func TestQueueDrainErrors(t *testing.T) {
	q := debugmenu.NewQueue(4)
	var flag bool
	_ = q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestBool, Path: "A/Flag", Target: &flag})
	_ = q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestArray, Path: "A/Bad", Titles: []string{"x"}})
	_ = q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestRemove, Path: "Missing"})
	_ = q.Push(debugmenu.CreateRequest{Kind: debugmenu.RequestPreset, Path: "A/Go", Titles: []string{"Now"}, Apply: func(int) {}})

	m := newTestMenu(t)
	n, err := q.Drain(m)
	if n != 2 {
		t.Errorf("Expected 2 applied, got %d", n)
	}
	if !errors.Is(err, debugmenu.ErrInvalidArgument) || !errors.Is(err, debugmenu.ErrNotFound) {
		t.Errorf("Expected joined argument and lookup errors, got %v", err)
	}
	if got := childTitles(t, m, mustGet(t, m, "A")); len(got) != 2 {
		t.Errorf("Expected Flag and Go under A, got %v", got)
	}
}

func TestQueueConcurrent(t *testing.T) {
	const total = 500
	q := debugmenu.NewQueue(16)
	m := newTestMenu(t, debugmenu.WithArena(debugmenu.ArenaConfig{Items: 1024, TextBytes: 1 << 16, Spans: 2048}))
	targets := make([]bool, total)

	var wg sync.WaitGroup
	wg.Go(func() {
		for i := 0; i < total; {
			req := debugmenu.CreateRequest{
				Kind:   debugmenu.RequestBool,
				Path:   fmt.Sprintf("Group %d/Flag %d", i%10, i),
				Target: &targets[i],
			}
			if err := q.Push(req); errors.Is(err, debugmenu.ErrQueueFull) {
				runtime.Gosched()
				continue
			}
			i++
		}
	})

	applied := 0
	for applied < total {
		if l := q.Len(); l < 0 || l > q.Cap() {
			t.Fatalf("Len() = %d outside [0, %d] on the consumer", l, q.Cap())
		}
		n, err := q.Drain(m)
		if err != nil {
			t.Fatalf("Drain returned error: %v", err)
		}
		applied += n
		if n == 0 {
			runtime.Gosched()
		}
	}
	wg.Wait()

	for i := range total {
		if _, err := m.GetItem(debugmenu.Handle{}, fmt.Sprintf("Group %d/Flag %d", i%10, i), false); err != nil {
			t.Fatalf("item %d missing: %v", i, err)
		}
	}
}
