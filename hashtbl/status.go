package hashtbl

import "strings"

// Status is the outcome of a table operation. The low byte holds failure
// reasons and the bits above it hold success variants, so flags combine
// with | and are tested with Has.
type Status uint16

const (
	Failure       Status = 1 << 0
	MallocFailure Status = 1 << 1
	NoValueFound  Status = 1 << 2

	Success          Status = 1 << 8
	ValueUpdated     Status = 1 << 9
	NewValueInserted Status = 1 << 10
	ValueRemoved     Status = 1 << 11
)

var statusNames = [...]struct {
	s    Status
	name string
}{
	{Failure, "Failure"},
	{MallocFailure, "MallocFailure"},
	{NoValueFound, "NoValueFound"},
	{Success, "Success"},
	{ValueUpdated, "ValueUpdated"},
	{NewValueInserted, "NewValueInserted"},
	{ValueRemoved, "ValueRemoved"},
}

// Ok reports if the operation succeeded.
func (s Status) Ok() bool { return s >= Success }

// Has reports if every bit of f is set in s.
func (s Status) Has(f Status) bool { return f != 0 && s&f == f }

func (s Status) String() string {
	if s == 0 {
		return "Status(0)"
	}
	var b strings.Builder
	for _, sn := range statusNames {
		if s&sn.s == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(sn.name)
	}
	return b.String()
}
