package debugmenu

// Values is the payload of a leaf: an indexed set of values that can be
// written into a caller-owned target.
type Values interface {
	// Len returns the number of values.
	Len() int
	// Apply writes value i into the bound target.
	Apply(i int)
	// Index returns the index of the value the target currently holds, or -1.
	Index() int
}

// arrayValues stores values inline.
type arrayValues[T comparable] struct {
	values []T
	target *T
}

// ArrayValues binds an inline value array to target. The slice is retained,
// not copied.
func ArrayValues[T comparable](values []T, target *T) Values {
	return &arrayValues[T]{values: values, target: target}
}

func (v *arrayValues[T]) Len() int { return len(v.values) }

func (v *arrayValues[T]) Apply(i int) {
	if v.target != nil {
		*v.target = v.values[i]
	}
}

func (v *arrayValues[T]) Index() int {
	if v.target == nil {
		return -1
	}
	for i := range v.values {
		if v.values[i] == *v.target {
			return i
		}
	}
	return -1
}

// pointerValues references values owned elsewhere.
type pointerValues[T comparable] struct {
	ptrs   []*T
	target *T
}

// PointerValues binds an array of pointers to externally owned values.
// Apply copies *ptrs[i] into target, so later changes to the pointed-to
// values are picked up.
func PointerValues[T comparable](ptrs []*T, target *T) Values {
	return &pointerValues[T]{ptrs: ptrs, target: target}
}

func (v *pointerValues[T]) Len() int { return len(v.ptrs) }

func (v *pointerValues[T]) Apply(i int) {
	if v.target != nil && v.ptrs[i] != nil {
		*v.target = *v.ptrs[i]
	}
}

func (v *pointerValues[T]) Index() int {
	if v.target == nil {
		return -1
	}
	for i, p := range v.ptrs {
		if p != nil && *p == *v.target {
			return i
		}
	}
	return -1
}

// boolValueTitles are the titles of a bool item, index 0 is true.
var boolValueTitles = []string{"True", "False"}

// BoolValues toggles *target. Index 0 is true, index 1 is false.
func BoolValues(target *bool) Values {
	return boolValues{target: target}
}

type boolValues struct{ target *bool }

func (boolValues) Len() int { return 2 }

func (v boolValues) Apply(i int) {
	if v.target != nil {
		*v.target = i == 0
	}
}

func (v boolValues) Index() int {
	if v.target == nil {
		return -1
	}
	if *v.target {
		return 0
	}
	return 1
}

// FuncValues calls apply(i) for each applied value. Use it for presets and
// custom editors that do not map onto a single target.
func FuncValues(n int, apply func(i int)) Values {
	return funcValues{n: n, apply: apply}
}

type funcValues struct {
	n     int
	apply func(int)
}

func (v funcValues) Len() int { return v.n }

func (v funcValues) Apply(i int) {
	if v.apply != nil {
		v.apply(i)
	}
}

func (funcValues) Index() int { return -1 }
