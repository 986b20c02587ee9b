package codegen

import "fmt"

// labelAllocator hands out unique local labels for control-flow codegen
// (.Lif3, .Lwhile_end7, ...). A single counter shared across the whole
// program is simpler than per-function counters and still produces
// unique labels, since nothing ever needs to compare label numbers
// across functions.
type labelAllocator struct {
	next int
}

func newLabelAllocator() *labelAllocator {
	return &labelAllocator{}
}

// New returns a fresh label of the form ".L<prefix><n>".
func (a *labelAllocator) New(prefix string) string {
	n := a.next
	a.next++
	return fmt.Sprintf(".L%s%d", prefix, n)
}
