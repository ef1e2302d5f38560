// SPDX-License-Identifier: MIT

package gen

// SeqState identifies one phase of the generation sequence. The phases
// are laid out in the natural order as one would hear them.
type SeqState uint8

const (
	SeqAFSKHeaderFirst SeqState = iota
	SeqSilenceFirst
	SeqAFSKHeaderSecond
	SeqSilenceSecond
	SeqAFSKHeaderThird
	SeqSilenceThird
	SeqAttnSig
	SeqSilenceFourth
	SeqAFSKEOMFirst
	SeqSilenceFifth
	SeqAFSKEOMSecond
	SeqSilenceSixth
	SeqAFSKEOMThird
	SeqSilenceSeventh

	seqStateCount
)

// SeqDone is the terminal state: every phase has been fully emitted.
const SeqDone = seqStateCount

var seqStateNames = [...]string{
	SeqAFSKHeaderFirst:  "afsk_header_1",
	SeqSilenceFirst:     "silence_1",
	SeqAFSKHeaderSecond: "afsk_header_2",
	SeqSilenceSecond:    "silence_2",
	SeqAFSKHeaderThird:  "afsk_header_3",
	SeqSilenceThird:     "silence_3",
	SeqAttnSig:          "attention_signal",
	SeqSilenceFourth:    "silence_4",
	SeqAFSKEOMFirst:     "afsk_eom_1",
	SeqSilenceFifth:     "silence_5",
	SeqAFSKEOMSecond:    "afsk_eom_2",
	SeqSilenceSixth:     "silence_6",
	SeqAFSKEOMThird:     "afsk_eom_3",
	SeqSilenceSeventh:   "silence_7",
}

func (s SeqState) String() string {
	if s >= seqStateCount {
		return "done"
	}
	return seqStateNames[s]
}

// eomHeader is the 20-byte End of Message burst: the preamble
// repetitions followed by "NNNN".
var eomHeader = func() [EOMSize]byte {
	var b [EOMSize]byte
	for i := 0; i < PreambleCount; i++ {
		b[i] = Preamble
	}
	copy(b[PreambleCount:], ASCIIEOM)
	return b
}()

// State reports the phase the next sample will be drawn from, or
// SeqDone once the transmission is complete.
func (c *Ctx) State() SeqState { return c.seqState }

// Done reports whether every phase has been emitted. NextChunk must not
// be called once Done returns true.
func (c *Ctx) Done() bool { return c.seqState >= SeqDone }

// NextChunk renders the next window of samples into the context's chunk
// buffer and returns the filled prefix. The slice aliases the internal
// buffer and is valid until the next call; its length is ChunkSamples
// except for the final chunk of the transmission, which may be shorter.
//
// Calling NextChunk on a completed context is a usage error and panics.
func (c *Ctx) NextChunk() []int16 {
	assert(c.seqState < SeqDone, "NextChunk called on a completed context")

	for i := 0; i < ChunkSamples; i++ {
		switch c.seqState {
		case SeqAFSKHeaderFirst, SeqAFSKHeaderSecond, SeqAFSKHeaderThird:
			c.afskGen(c.headerData[:c.headerSize], i)

		case SeqSilenceFirst, SeqSilenceSecond, SeqSilenceThird,
			SeqSilenceFourth, SeqSilenceFifth, SeqSilenceSixth,
			SeqSilenceSeventh:
			c.silenceGen(i)

		case SeqAttnSig:
			c.attnSigGen(i)

		case SeqAFSKEOMFirst, SeqAFSKEOMSecond, SeqAFSKEOMThird:
			c.afskGen(eomHeader[:], i)

		default:
			assert(false, "unreachable sequence state")
		}

		c.seqRemaining[c.seqState]--
		if c.seqRemaining[c.seqState] == 0 {
			c.seqState++
			if c.seqState >= SeqDone {
				return c.sampleData[:i+1]
			}
		}
	}
	return c.sampleData[:]
}
