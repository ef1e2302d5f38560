// SPDX-License-Identifier: MIT

package sine

// Func delegates sample generation to an application-supplied callback,
// invoked with the caller's userdata and the (t, freq) pair. The
// callback must return full-scale int16 samples with the same
// sin(2*pi*freq*t) semantics as the built-in engines.
type Func struct {
	Fn       func(userdata any, t, freq float32) int16
	Userdata any
}

func (f Func) Sample(_ *float32, t, freq float32) int16 {
	return f.Fn(f.Userdata, t, freq)
}

func (Func) Name() string { return "app" }

func (Func) Description() string {
	return "application-supplied sine generation function"
}
