package smoothlife

import (
	"strconv"

	"soft-ca/internal/convolve"
	"soft-ca/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				intParam("kernel_radius", "Kernel radius", params.KernelRadius),
				intParam("workers", "Workers", params.Workers),
			},
		},
		{
			Name: "Integration",
			Params: []core.Parameter{
				floatParam("dt", "Timestep", params.DT),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("init_radius", "Init radius", params.InitRadius),
				floatParam("init_density", "Init density", params.InitDensity),
				boolParam("seed_blocks", "Seed blocks", params.SeedBlocks),
			},
		},
		{
			Name: "Telemetry",
			Params: []core.Parameter{
				floatParam("activity_eps", "Activity epsilon", params.ActivityEps),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs adjustable from the HUD. The seeding
// knobs only apply on the next reset; the timestep and kernel radius act
// immediately.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "dt",
			Label: "Timestep",
			Type:  core.ParamTypeFloat,
			Step:  0.01,
			Min:   0, Max: 0.5,
			HasMin: true, HasMax: true,
		},
		{
			Key:   "kernel_radius",
			Label: "Kernel radius",
			Type:  core.ParamTypeInt,
			Step:  1,
			Min:   1, Max: 64,
			HasMin: true, HasMax: true,
		},
		{
			Key:   "init_radius",
			Label: "Init radius",
			Type:  core.ParamTypeFloat,
			Step:  0.05,
			Min:   0.05, Max: 0.5,
			HasMin: true, HasMax: true,
		},
		{
			Key:   "init_density",
			Label: "Init density",
			Type:  core.ParamTypeFloat,
			Step:  0.05,
			Min:   0, Max: 1,
			HasMin: true, HasMax: true,
		},
	}
}

// SetFloatParameter updates a float knob, clamping to its valid range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "dt":
		w.cfg.Params.DT = clampFloat(value, 0, 0.5)
	case "init_radius":
		w.cfg.Params.InitRadius = clampFloat(value, 0.05, 0.5)
	case "init_density":
		w.cfg.Params.InitDensity = clampFloat(value, 0, 1)
	case "activity_eps":
		w.cfg.Params.ActivityEps = clampFloat(value, 0, 0.5)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer knob. Changing the kernel radius
// rebuilds the convolution kernel in place.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "kernel_radius":
		if value < 1 {
			value = 1
		}
		if value > 64 {
			value = 64
		}
		if value != w.cfg.Params.KernelRadius {
			w.cfg.Params.KernelRadius = value
			w.kernel = convolve.Cone(value)
		}
	case "workers":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.Workers = value
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
