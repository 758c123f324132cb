package testhelp

import "github.com/zeebo/errs/v2"

// Link is one node of a heap allocated chain of ints, the kind of value
// that needs a deep copy to be owned by a container.
type Link struct {
	Next *Link
	A    int

	freed bool
}

// Values returns the ints along the chain.
func (l *Link) Values() (vs []int) {
	for ; l != nil; l = l.Next {
		vs = append(vs, l.A)
	}
	return vs
}

// Freed reports if any node of the chain has been released.
func (l *Link) Freed() bool {
	for ; l != nil; l = l.Next {
		if l.freed {
			return true
		}
	}
	return false
}

// Tracker allocates, copies and frees chains and counts the nodes still
// alive, so tests can check every copy is released exactly once.
type Tracker struct {
	Live        int
	DoubleFrees int

	// FailAt makes the FailAt'th call to Copy fail. Zero never fails.
	FailAt int
	calls  int
}

// New allocates a chain holding vs.
func (tr *Tracker) New(vs ...int) (head *Link) {
	for i := len(vs) - 1; i >= 0; i-- {
		head = &Link{Next: head, A: vs[i]}
		tr.Live++
	}
	return head
}

// Copy is a value copy function for chains.
func (tr *Tracker) Copy(l *Link) (*Link, error) {
	tr.calls++
	if tr.FailAt > 0 && tr.calls == tr.FailAt {
		return nil, errs.Errorf("simulated allocation failure on copy %d", tr.calls)
	}
	return tr.New(l.Values()...), nil
}

// Free is a value free function for chains.
func (tr *Tracker) Free(l *Link) {
	for ; l != nil; l = l.Next {
		if l.freed {
			tr.DoubleFrees++
			continue
		}
		l.freed = true
		tr.Live--
	}
}

// Calls is the number of times Copy has been called.
func (tr *Tracker) Calls() int { return tr.calls }

// FailingCopy returns a copy function that fails on its n'th call and
// copies by assignment otherwise.
func FailingCopy[X any](n int) func(X) (X, error) {
	calls := 0
	return func(x X) (X, error) {
		calls++
		if calls == n {
			return *new(X), errs.Errorf("simulated allocation failure on copy %d", calls)
		}
		return x, nil
	}
}
