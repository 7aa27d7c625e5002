// Package png renders a circuit.Circuit's operation list as a PNG
// circuit diagram. Grounded on qc/renderer/ggpng.go's gg-based wire and
// gate-box drawing; re-pointed at circuit.Op's flat operation list
// instead of the teacher's DAG-scheduled TimeStep/Line layout, so every
// operation gets its own column in append order rather than being
// packed into parallel time steps.
package png

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"

	"github.com/kegliz/qplay/qc/circuit"
)

// Renderer draws a Circuit's operations onto a grid of Cell-pixel
// squares, one column per operation and one row per qubit.
type Renderer struct{ Cell float64 }

// New returns a renderer using cellPx-pixel grid cells.
func New(cellPx int) Renderer { return Renderer{Cell: float64(cellPx)} }

// Render draws c and returns the resulting image.
func (r Renderer) Render(c *circuit.Circuit) (image.Image, error) {
	ops := c.Operations()
	steps := len(ops)
	if steps < 1 {
		steps = 1
	}
	w := int(float64(steps) * r.Cell)
	h := int(float64(c.NrBits()) * r.Cell)
	if h <= 0 {
		h = int(r.Cell)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for i := 0; i < c.NrBits(); i++ {
		y := r.y(i)
		dc.DrawLine(0, y, float64(w), y)
		dc.Stroke()
	}

	for step, op := range ops {
		switch op.Kind {
		case circuit.OpGate, circuit.OpConditionalGate:
			r.drawGate(dc, step, op)
		case circuit.OpMeasure:
			r.drawMeasurement(dc, step, op.Qbit)
		case circuit.OpMeasureAll:
			for qbit := range op.Cbits {
				r.drawMeasurement(dc, step, qbit)
			}
		case circuit.OpPeekAll:
			for qbit := range op.Cbits {
				r.drawPeek(dc, step, qbit)
			}
		case circuit.OpReset:
			r.drawReset(dc, step, op.Qbit)
		case circuit.OpResetAll:
			for qbit := 0; qbit < c.NrBits(); qbit++ {
				r.drawReset(dc, step, qbit)
			}
		case circuit.OpBarrier:
			r.drawBarrier(dc, step, c.NrBits())
		}
	}

	return dc.Image(), nil
}

// Save renders c and writes it as a PNG file at path.
func (r Renderer) Save(path string, c *circuit.Circuit) error {
	img, err := r.Render(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (r Renderer) x(step int) float64 { return float64(step)*r.Cell + r.Cell/2 }
func (r Renderer) y(line int) float64 { return float64(line)*r.Cell + r.Cell/2 }

// drawGate renders a single- or multi-qubit gate: single-qubit gates as
// a labeled box, multi-qubit gates as control dots on every bit but the
// last plus a labeled box on the last (the teacher's CX/CCX special
// cases are folded into this general rule, which is applied the same
// way to every other multi-qubit gate, CZ, CH, CCZ and Kron composites
// included).
func (r Renderer) drawGate(dc *gg.Context, step int, op circuit.Op) {
	x := r.x(step)
	bits := op.Bits
	if len(bits) == 1 {
		r.drawBox(dc, x, r.y(bits[0]), op.G.Description())
		return
	}

	target := bits[len(bits)-1]
	minLine, maxLine := bits[0], bits[0]
	for _, q := range bits {
		if q < minLine {
			minLine = q
		}
		if q > maxLine {
			maxLine = q
		}
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawLine(x, r.y(minLine), x, r.y(maxLine))
	dc.Stroke()
	for _, ctrl := range bits[:len(bits)-1] {
		dc.DrawCircle(x, r.y(ctrl), r.Cell*0.12)
		dc.Fill()
	}
	r.drawBox(dc, x, r.y(target), op.G.Description())
}

func (r Renderer) drawBox(dc *gg.Context, x, y float64, label string) {
	size := r.Cell * 0.7
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x-size/2, y-size/2, size, size)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
}

func (r Renderer) drawMeasurement(dc *gg.Context, step, qbit int) {
	x, y := r.x(step), r.y(qbit)
	rad := r.Cell * 0.25
	dc.SetRGB(0, 0, 0)
	dc.NewSubPath()
	dc.DrawArc(x, y, rad, math.Pi, 2*math.Pi)
	dc.ClosePath()
	dc.Stroke()
	dc.MoveTo(x, y)
	dc.LineTo(x+rad*0.8, y-rad*0.8)
	dc.Stroke()
	dc.DrawStringAnchored("M", x+rad*1.6, y-rad*0.4, 0.0, 0.5)
}

// drawPeek draws the measurement arc in gray, without the needle and
// labeled "P", to distinguish a non-collapsing probe from a real
// measurement.
func (r Renderer) drawPeek(dc *gg.Context, step, qbit int) {
	x, y := r.x(step), r.y(qbit)
	rad := r.Cell * 0.25
	dc.SetRGB(0.5, 0.5, 0.5)
	dc.NewSubPath()
	dc.DrawArc(x, y, rad, math.Pi, 2*math.Pi)
	dc.ClosePath()
	dc.Stroke()
	dc.DrawStringAnchored("P", x+rad*1.6, y-rad*0.4, 0.0, 0.5)
	dc.SetRGB(0, 0, 0)
}

func (r Renderer) drawReset(dc *gg.Context, step, qbit int) {
	r.drawBox(dc, r.x(step), r.y(qbit), "|0>")
}

func (r Renderer) drawBarrier(dc *gg.Context, step, nrBits int) {
	x := r.x(step)
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(2)
	dc.DrawLine(x, 0, x, float64(nrBits)*r.Cell)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.SetRGB(0, 0, 0)
}
