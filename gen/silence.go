// SPDX-License-Identifier: MIT

package gen

// silenceGen renders one silent sample into the chunk buffer at pos.
func (c *Ctx) silenceGen(pos int) {
	c.sampleData[pos] = 0
}
