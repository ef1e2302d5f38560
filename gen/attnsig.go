// SPDX-License-Identifier: MIT

package gen

// attnSigGen renders one attention-signal sample into the chunk buffer
// at pos: the sum of the two fundamental tones, each at half scale so
// the combined waveform cannot clip. Time advances monotonically for
// the duration of the phase; each tone keeps its own phase accumulator
// for table-mode engines.
func (c *Ctx) attnSigGen(pos int) {
	t := float32(c.attnSig.sampleNum) / float32(c.sampleRate)

	first := int32(c.engine.Sample(&c.attnSig.phaseFirst, t, AttnSigFreqFirst))
	second := int32(c.engine.Sample(&c.attnSig.phaseSecond, t, AttnSigFreqSecond))

	c.sampleData[pos] = int16((first + second) / 2)
	c.attnSig.sampleNum++
}
