// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"

	"github.com/mcroddev/libsame/sine"
)

// Ctx is the generation context: every piece of state needed to render
// one transmission, embedded inline so that no generation call touches
// the heap. A Ctx is created zeroed, configured by Init, driven by
// NextChunk until Done, and may then be discarded or reinitialized.
//
// The struct weighs roughly 10 KB (dominated by the chunk buffer), so
// stack placement is fine on hosted targets.
type Ctx struct {
	sampleData [ChunkSamples]int16

	headerData [HeaderSizeMax]byte
	headerSize int

	seqRemaining [seqStateCount]uint32
	seqState     SeqState
	totalSamples int

	afsk struct {
		dataPos   int
		bitPos    uint8
		sampleNum uint32
		phase     float32
	}

	attnSig struct {
		sampleNum   uint32
		phaseFirst  float32
		phaseSecond float32
	}

	sampleRate    uint32
	samplesPerBit uint32

	engine sine.Generator
}

// Init configures a context from h at sampleRate Hz using the default
// sine engine. 44100 is the tested default rate.
func (c *Ctx) Init(h *Header, sampleRate int) {
	c.InitWithSine(h, sampleRate, sine.Libc{})
}

// InitWithSine is Init with an explicit sine engine. It serializes the
// header, computes the samples-per-bit figure and every per-phase sample
// budget, and rewinds the sequence to the first burst. Any prior state
// in c is discarded.
//
// h must satisfy the field-length preconditions documented on Header;
// violations panic. Character classes are not checked here.
func (c *Ctx) InitWithSine(h *Header, sampleRate int, engine sine.Generator) {
	assert(h != nil, "nil header")
	assert(sampleRate > 0, "sample rate must be positive")
	assert(engine != nil, "nil sine engine")
	assert(len(h.LocationCodes) <= LocationCodesMax, "too many location codes")

	*c = Ctx{}
	c.sampleRate = uint32(sampleRate)
	c.samplesPerBit = uint32(float32(sampleRate)/AFSKBitRate + 0.5)
	c.engine = engine

	c.serializeHeader(h)

	headerSamples := uint32(BitsPerChar) * c.samplesPerBit * uint32(c.headerSize)
	eomSamples := uint32(BitsPerChar) * c.samplesPerBit * uint32(EOMSize)
	silenceSamples := uint32(SilenceDuration) * c.sampleRate
	attnSamples := uint32(h.AttnSigDuration) * c.sampleRate

	c.seqRemaining[SeqAFSKHeaderFirst] = headerSamples
	c.seqRemaining[SeqAFSKHeaderSecond] = headerSamples
	c.seqRemaining[SeqAFSKHeaderThird] = headerSamples

	c.seqRemaining[SeqAFSKEOMFirst] = eomSamples
	c.seqRemaining[SeqAFSKEOMSecond] = eomSamples
	c.seqRemaining[SeqAFSKEOMThird] = eomSamples

	c.seqRemaining[SeqSilenceFirst] = silenceSamples
	c.seqRemaining[SeqSilenceSecond] = silenceSamples
	c.seqRemaining[SeqSilenceThird] = silenceSamples
	c.seqRemaining[SeqSilenceFourth] = silenceSamples
	c.seqRemaining[SeqSilenceFifth] = silenceSamples
	c.seqRemaining[SeqSilenceSixth] = silenceSamples
	c.seqRemaining[SeqSilenceSeventh] = silenceSamples

	c.seqRemaining[SeqAttnSig] = attnSamples

	for _, n := range c.seqRemaining {
		c.totalSamples += int(n)
	}
}

// serializeHeader renders h into the canonical on-air byte sequence:
//
//	[0xAB x16] ZCZC-ORG-EEE-PSSCCC(-PSSCCC...)+TTTT-JJJHHMM-LLLLLLLL-
//
// Note the dash written after the final location code is rewritten to
// '+' before the valid time period is appended.
func (c *Ctx) serializeHeader(h *Header) {
	for i := 0; i < PreambleCount; i++ {
		c.headerData[i] = Preamble
	}
	copy(c.headerData[PreambleCount:], ASCIIStart)
	c.headerData[PreambleCount+len(ASCIIStart)] = '-'
	c.headerSize = PreambleCount + len(ASCIIStart) + 1

	c.appendField(h.OriginatorCode, OriginatorCodeLen)
	c.appendField(h.EventCode, EventCodeLen)

	for _, loc := range h.LocationCodes {
		c.appendField(loc, LocationCodeLen)
	}
	c.headerData[c.headerSize-1] = '+'

	c.appendField(h.ValidTimePeriod, ValidTimePeriodLen)
	c.appendField(h.OriginatorTime, OriginatorTimeLen)
	c.appendField(h.Callsign, CallsignLen)
}

// appendField copies one fixed-length field plus its trailing dash into
// the header buffer. CallsignLen is the largest field; if that ever
// changes the assertion must change with it.
func (c *Ctx) appendField(field string, fieldLen int) {
	assert(fieldLen > 0 && fieldLen <= CallsignLen, "field length out of range")
	if len(field) != fieldLen {
		assert(false, fmt.Sprintf("field %q must be exactly %d bytes", field, fieldLen))
	}

	copy(c.headerData[c.headerSize:], field)
	c.headerSize += fieldLen
	c.headerData[c.headerSize] = '-'
	c.headerSize++
}

// SampleRate reports the configured output rate in Hz.
func (c *Ctx) SampleRate() int { return int(c.sampleRate) }

// SamplesPerBit reports the number of samples rendered per AFSK bit,
// round(rate / AFSKBitRate). 85 at 44100 Hz.
func (c *Ctx) SamplesPerBit() int { return int(c.samplesPerBit) }

// Engine reports the sine generator in use.
func (c *Ctx) Engine() sine.Generator { return c.engine }

// SerializedHeader returns the on-air header bytes. The slice aliases
// the context's internal buffer and must not be modified.
func (c *Ctx) SerializedHeader() []byte { return c.headerData[:c.headerSize] }

// TotalSamples reports the number of samples the context emits over its
// whole lifecycle, useful for preallocating collection buffers.
func (c *Ctx) TotalSamples() int { return c.totalSamples }

func assert(cond bool, msg string) {
	if !cond {
		panic("libsame/gen: " + msg)
	}
}
