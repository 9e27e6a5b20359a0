package hw

import "sync"

// Port names for recorded writes.
const (
	PortAnodes = "anodes"
	PortLatch  = "latch"
	PortData   = "data"
)

// Op is one recorded port write.
type Op struct {
	Port  string
	Value byte
}

// RecordingBus is a fake board for tests and simulation: it records
// every port write and serves scripted button levels.
type RecordingBus struct {
	mu     sync.Mutex
	ops    []Op
	levels [3]bool
}

var _ Bus = (*RecordingBus)(nil)

func NewRecordingBus() *RecordingBus {
	return &RecordingBus{}
}

// maxOps bounds the log so a long simulation run cannot grow without
// limit; the oldest half is dropped when the cap is hit.
const maxOps = 1 << 16

func (r *RecordingBus) record(port string, v byte) {
	r.mu.Lock()
	if len(r.ops) >= maxOps {
		r.ops = append(r.ops[:0], r.ops[maxOps/2:]...)
	}
	r.ops = append(r.ops, Op{Port: port, Value: v})
	r.mu.Unlock()
}

func (r *RecordingBus) WriteAnodes(b byte) { r.record(PortAnodes, b) }
func (r *RecordingBus) SelectLatch(b byte) { r.record(PortLatch, b) }
func (r *RecordingBus) WriteData(b byte)   { r.record(PortData, b) }

func (r *RecordingBus) ReadButtons() (pause, reset, advance bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels[0], r.levels[1], r.levels[2]
}

// SetButtons scripts the raw button levels; true means pressed.
func (r *RecordingBus) SetButtons(pause, reset, advance bool) {
	r.mu.Lock()
	r.levels = [3]bool{pause, reset, advance}
	r.mu.Unlock()
}

// Ops returns a copy of everything recorded so far.
func (r *RecordingBus) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Writes returns the recorded values for one port, in order.
func (r *RecordingBus) Writes(port string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []byte
	for _, op := range r.ops {
		if op.Port == port {
			out = append(out, op.Value)
		}
	}
	return out
}

// Reset discards the recorded writes.
func (r *RecordingBus) Reset() {
	r.mu.Lock()
	r.ops = r.ops[:0]
	r.mu.Unlock()
}
