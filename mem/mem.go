// Package mem holds the small scratch-buffer pool the lut3d package's hot
// evaluation paths borrow from instead of allocating per call.
package mem

import "sync"

// Channels is the fixed channel count every scratch buffer is sized for.
// LUT3D is always 3-in/3-out.
const Channels = 3

// Scratch holds the reusable float32 buffers a single evaluation needs: two
// working vectors (current/next) plus a Jacobian-inversion workspace.
type Scratch struct {
	Buf     [2][Channels]float32
	Delta   [Channels]float32
	Guess   [Channels]float32
	Jacob   [Channels][Channels]float32
}

var pool = sync.Pool{
	New: func() any { return new(Scratch) },
}

// Get returns a Scratch from the pool. Its contents are not zeroed; callers
// overwrite every field they read.
func Get() *Scratch { return pool.Get().(*Scratch) }

// Put returns s to the pool.
func Put(s *Scratch) { pool.Put(s) }

// WithScratch runs fn with a pooled Scratch and returns it afterwards.
func WithScratch(fn func(*Scratch)) {
	s := Get()
	defer Put(s)
	fn(s)
}
