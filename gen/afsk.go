// SPDX-License-Identifier: MIT

package gen

// afskGen renders one AFSK sample of data into the chunk buffer at pos.
//
// Bits are taken LSB-first from the byte at the current data position;
// a 1 bit selects the mark tone, a 0 bit the space tone. Time restarts
// at every bit boundary, so each bit begins a fresh sine period. When
// the final byte of data completes, the whole AFSK sub-state (including
// the table-mode phase accumulator) is cleared for the next burst.
func (c *Ctx) afskGen(data []byte, pos int) {
	assert(len(data) > 0, "empty AFSK data")

	freq := AFSKSpaceFreq
	if (data[c.afsk.dataPos]>>c.afsk.bitPos)&1 == 1 {
		freq = AFSKMarkFreq
	}

	t := float32(c.afsk.sampleNum) / float32(c.sampleRate)
	c.sampleData[pos] = c.engine.Sample(&c.afsk.phase, t, freq)

	c.afsk.sampleNum++
	if c.afsk.sampleNum >= c.samplesPerBit {
		c.afsk.sampleNum = 0
		c.afsk.bitPos++

		if c.afsk.bitPos >= BitsPerChar {
			c.afsk.bitPos = 0
			c.afsk.dataPos++

			if c.afsk.dataPos >= len(data) {
				c.afsk.dataPos = 0
				c.afsk.phase = 0
			}
		}
	}
}
