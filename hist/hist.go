// Package hist provides histogram-filling sinks. Histograms are pure
// consumers of a produced sequence: the engine pushes elements into them
// via ForEach and knows nothing about their accumulation format.
package hist

import (
	"math"

	"vista/views"
)

// H1D is a one-dimensional histogram with uniform bins over [Lo, Hi).
// Entries below Lo land in the underflow, entries at or above Hi in the
// overflow.
type H1D struct {
	lo, hi  float64
	bins    []float64
	under   float64
	over    float64
	entries int

	// weighted moments over in-range fills
	sumw   float64
	sumwx  float64
	sumwx2 float64
}

// NewH1D creates a histogram with nbins uniform bins spanning [lo, hi).
// Panics if nbins is not positive or hi is not greater than lo.
func NewH1D(nbins int, lo, hi float64) *H1D {
	if nbins <= 0 {
		panic("hist.NewH1D: nbins must be positive")
	}
	if hi <= lo {
		panic("hist.NewH1D: hi must be greater than lo")
	}
	return &H1D{lo: lo, hi: hi, bins: make([]float64, nbins)}
}

// Fill adds one entry with unit weight.
func (h *H1D) Fill(x float64) { h.FillW(x, 1) }

// FillW adds one entry with the given weight.
func (h *H1D) FillW(x, w float64) {
	h.entries++
	switch {
	case x < h.lo:
		h.under += w
	case x >= h.hi:
		h.over += w
	default:
		i := int((x - h.lo) / (h.hi - h.lo) * float64(len(h.bins)))
		if i == len(h.bins) { // guard against float rounding at the upper edge
			i--
		}
		h.bins[i] += w
		h.sumw += w
		h.sumwx += w * x
		h.sumwx2 += w * x * x
	}
}

// NumBins returns the number of regular bins.
func (h *H1D) NumBins() int { return len(h.bins) }

// BinContent returns the accumulated weight of bin i.
func (h *H1D) BinContent(i int) float64 { return h.bins[i] }

// Underflow returns the weight accumulated below the lower edge.
func (h *H1D) Underflow() float64 { return h.under }

// Overflow returns the weight accumulated at or above the upper edge.
func (h *H1D) Overflow() float64 { return h.over }

// Entries returns the number of Fill calls, regardless of weight or range.
func (h *H1D) Entries() int { return h.entries }

// Mean returns the weighted mean of the in-range entries.
func (h *H1D) Mean() float64 {
	if h.sumw == 0 {
		return 0
	}
	return h.sumwx / h.sumw
}

// Sigma returns the weighted population standard deviation of the in-range
// entries.
func (h *H1D) Sigma() float64 {
	if h.sumw == 0 {
		return 0
	}
	m := h.Mean()
	return math.Sqrt(h.sumwx2/h.sumw - m*m)
}

// Fill pushes every element of a finite view into the histogram through the
// projection.
func Fill[T any](h *H1D, v views.View[T], projection func(T) float64) {
	v.ForEach(func(x T) { h.Fill(projection(x)) })
}

// FillW is like [Fill] for weighted entries: the projection returns the
// value and its weight.
func FillW[T any](h *H1D, v views.View[T], projection func(T) (x, w float64)) {
	v.ForEach(func(e T) { h.FillW(projection(e)) })
}

// H2D is a two-dimensional histogram with uniform bins on both axes.
// Out-of-range fills on either axis are discarded into a single spill
// counter.
type H2D struct {
	xlo, xhi float64
	ylo, yhi float64
	nx, ny   int
	bins     []float64
	spill    float64
	entries  int
}

// NewH2D creates a 2-D histogram with nx × ny uniform bins.
// Panics on non-positive bin counts or inverted axis bounds.
func NewH2D(nx int, xlo, xhi float64, ny int, ylo, yhi float64) *H2D {
	if nx <= 0 || ny <= 0 {
		panic("hist.NewH2D: bin counts must be positive")
	}
	if xhi <= xlo || yhi <= ylo {
		panic("hist.NewH2D: axis bounds must be increasing")
	}
	return &H2D{
		xlo: xlo, xhi: xhi,
		ylo: ylo, yhi: yhi,
		nx: nx, ny: ny,
		bins: make([]float64, nx*ny),
	}
}

// Fill adds one entry with unit weight.
func (h *H2D) Fill(x, y float64) { h.FillW(x, y, 1) }

// FillW adds one entry with the given weight.
func (h *H2D) FillW(x, y, w float64) {
	h.entries++
	if x < h.xlo || x >= h.xhi || y < h.ylo || y >= h.yhi {
		h.spill += w
		return
	}
	ix := int((x - h.xlo) / (h.xhi - h.xlo) * float64(h.nx))
	if ix == h.nx {
		ix--
	}
	iy := int((y - h.ylo) / (h.yhi - h.ylo) * float64(h.ny))
	if iy == h.ny {
		iy--
	}
	h.bins[iy*h.nx+ix] += w
}

// BinContent returns the accumulated weight of bin (ix, iy).
func (h *H2D) BinContent(ix, iy int) float64 { return h.bins[iy*h.nx+ix] }

// Spill returns the weight accumulated outside the axis ranges.
func (h *H2D) Spill() float64 { return h.spill }

// Entries returns the number of Fill calls.
func (h *H2D) Entries() int { return h.entries }

// FillXY pushes every element of a finite view into a 2-D histogram; the
// projection returns both coordinates.
func FillXY[T any](h *H2D, v views.View[T], projection func(T) (x, y float64)) {
	v.ForEach(func(e T) { h.Fill(projection(e)) })
}

// FillXYW is like [FillXY] for (value, value, weight) accumulation.
func FillXYW[T any](h *H2D, v views.View[T], projection func(T) (x, y, w float64)) {
	v.ForEach(func(e T) { h.FillW(projection(e)) })
}
