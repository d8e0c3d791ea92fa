// Package testutil holds helpers shared by package tests.
package testutil

// ScriptedRandom returns queued values from Intn, for deterministic tests.
// Values are reduced modulo n so they always stay in range. Once the queue is
// empty Intn returns 0.
type ScriptedRandom struct {
	values []int
	index  int
}

// NewScriptedRandom creates a ScriptedRandom with the given queue.
func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{values: values}
}

// Intn returns the next queued value in [0, n).
func (r *ScriptedRandom) Intn(n int) int {
	if n <= 0 || r.index >= len(r.values) {
		return 0
	}
	v := r.values[r.index]
	r.index++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Queue appends values to the queue.
func (r *ScriptedRandom) Queue(values ...int) {
	r.values = append(r.values, values...)
}

// Used returns how many values have been consumed.
func (r *ScriptedRandom) Used() int {
	return r.index
}
