// SPDX-License-Identifier: MIT

package gen_test

import (
	"fmt"

	"github.com/mcroddev/libsame/gen"
)

// ExampleCtx_SerializedHeader shows the canonical on-air rendering of a
// header: the ASCII portion follows sixteen preamble bytes and the
// "ZCZC-" start marker.
func ExampleCtx_SerializedHeader() {
	var ctx gen.Ctx
	ctx.Init(&gen.Header{
		OriginatorCode:  "WXR",
		EventCode:       "TOR",
		LocationCodes:   []string{"048484", "048024"},
		ValidTimePeriod: "1000",
		OriginatorTime:  "1172221",
		Callsign:        "WAEB/AM ",
		AttnSigDuration: 8,
	}, 44100)

	data := ctx.SerializedHeader()
	fmt.Println(len(data))
	fmt.Println(string(data[21:]))
	// Output:
	// 65
	// WXR-TOR-048484-048024+1000-1172221-WAEB/AM -
}

func ExampleAttnSigDurations() {
	minSecs, maxSecs := gen.AttnSigDurations()
	fmt.Printf("%d..%d seconds\n", minSecs, maxSecs)
	// Output: 8..25 seconds
}
