package smoothlife

import "soft-ca/internal/core"

// ActivityMetrics summarizes how alive the field is after a step.
type ActivityMetrics struct {
	Active int
	Mean   float64
	Peak   float32
}

// refreshTelemetry rebuilds the activity mask and summary metrics, and
// logs a warning once when the whole field has died out. The warning
// re-arms if cells come back, which can happen with a negative timestep
// or after the parameters change.
func (w *World) refreshTelemetry() {
	eps := float32(w.cfg.Params.ActivityEps)
	cells := w.state.Cells()

	var m ActivityMetrics
	sum := 0.0
	for i, v := range cells {
		if v > eps {
			m.Active++
			w.activity[i] = 1
		} else {
			w.activity[i] = 0
		}
		if v > m.Peak {
			m.Peak = v
		}
		sum += float64(v)
	}
	if len(cells) > 0 {
		m.Mean = sum / float64(len(cells))
	}
	w.metrics = m

	if m.Active == 0 {
		if !w.extinct {
			w.extinct = true
			core.Logger().Warn("all cells died", "sim", w.Name(), "step", w.stepCount)
		}
		return
	}
	w.extinct = false
}
