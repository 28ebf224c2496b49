package reftables

import (
	"sort"

	"github.com/vedastra/jyotisha/internal/angle"
)

// KPSegment is one sub-lord division of the zodiac: [Start, End) degrees
// ruled by SubLord, within the nakshatra ruled by NakshatraLord.
type KPSegment struct {
	Start         float64
	End           float64
	NakshatraLord Planet
	SubLord       Planet
}

// kpSegments is the closed-form KP sub-lord partition, computed once at
// package init. spec.md 6 calls for an authoritative 249-row CSV division
// table ("Sign, Nakshatra, From_DMS, To_DMS, RasiLord, NakshatraLord,
// SubLord"); that file was not present in this repository's reference data
// (see DESIGN.md), so the partition is derived in closed form exactly as
// spec.md 4.4 describes as the fallback: each nakshatra's 13°20' span is
// split into nine sub-spans in Vimsottari proportion, in the cyclic order
// starting at the nakshatra's own lord. This reproduces the traditional
// table to the precision closed-form arithmetic allows; it does not carry
// the handful of rounding-driven discrepancies the shipped CSV would.
var kpSegments []KPSegment

func init() {
	kpSegments = buildKPSegments()
}

func buildKPSegments() []KPSegment {
	segments := make([]KPSegment, 0, NakshatraCount*9)

	for n := 1; n <= NakshatraCount; n++ {
		nakLord, _ := NakshatraLord(n)
		nakStart := float64(n-1) * NakshatraWidth

		subStart := nakStart
		for _, sub := range vimsottariCycleFrom(nakLord) {
			proportion, _ := VimsottariProportion(sub)
			width := NakshatraWidth * proportion
			segments = append(segments, KPSegment{
				Start:         subStart,
				End:           subStart + width,
				NakshatraLord: nakLord,
				SubLord:       sub,
			})
			subStart += width
		}
	}

	return segments
}

// vimsottariCycleFrom returns the nine NavagrahaOrder planets rotated to
// start at start, the cyclic order a Vimsottari-proportioned partition of
// any span (zodiac, nakshatra, or sub-segment) follows.
func vimsottariCycleFrom(start Planet) []Planet {
	idx := 0
	for i, p := range NavagrahaOrder {
		if p == start {
			idx = i
			break
		}
	}
	out := make([]Planet, 9)
	for i := 0; i < 9; i++ {
		out[i] = NavagrahaOrder[(idx+i)%9]
	}
	return out
}

// KPSegmentAt returns the sub-lord segment containing longitude lon.
func KPSegmentAt(lon float64) (KPSegment, bool) {
	x := angle.Norm(lon)
	i := sort.Search(len(kpSegments), func(i int) bool {
		return kpSegments[i].End > x
	})
	if i >= len(kpSegments) {
		return KPSegment{}, false
	}
	return kpSegments[i], true
}

// KPSubSubLordAt returns the sub-sub-lord at lon: a further nine-fold
// Vimsottari-proportioned split of the enclosing sub-lord segment,
// starting at the sub-lord itself.
func KPSubSubLordAt(lon float64) (Planet, bool) {
	seg, ok := KPSegmentAt(lon)
	if !ok {
		return "", false
	}
	x := angle.Norm(lon)
	width := seg.End - seg.Start
	cycle := vimsottariCycleFrom(seg.SubLord)

	subStart := seg.Start
	for i, p := range cycle {
		proportion, _ := VimsottariProportion(p)
		w := width * proportion
		if x < subStart+w || i == len(cycle)-1 {
			return p, true
		}
		subStart += w
	}
	return seg.SubLord, true
}

// KPPointer is the four-tuple (sign-lord, nakshatra-lord, sub-lord,
// sub-sub-lord) spec.md 4.4 defines as the KP pointer for a longitude.
type KPPointer struct {
	SignLord      Planet
	NakshatraLord Planet
	SubLord       Planet
	SubSubLord    Planet
}

// KPPointerAt computes the full KP pointer for a sidereal longitude.
func KPPointerAt(lon float64) (KPPointer, bool) {
	seg, ok := KPSegmentAt(lon)
	if !ok {
		return KPPointer{}, false
	}
	signLord, ok := RulerOf(Sign(angle.SignIndex(lon)))
	if !ok {
		return KPPointer{}, false
	}
	subSub, ok := KPSubSubLordAt(lon)
	if !ok {
		return KPPointer{}, false
	}
	return KPPointer{
		SignLord:      signLord,
		NakshatraLord: seg.NakshatraLord,
		SubLord:       seg.SubLord,
		SubSubLord:    subSub,
	}, true
}
