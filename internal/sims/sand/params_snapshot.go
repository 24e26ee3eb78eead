package sand

import (
	"math"
	"strconv"

	"powder/internal/core"
)

// Parameters reports the tunables and live counters of the grid.
func (g *Grid) Parameters() core.ParameterSnapshot {
	params := g.cfg.Params
	census := g.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", g.size.W),
				intParam("h", "Height", g.size.H),
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("accel", "Acceleration", params.Acceleration),
				floatParam("max_speed", "Max speed", params.MaxSpeed),
			},
		},
		{
			Name: "Colour",
			Params: []core.Parameter{
				floatParam("saturation_jitter", "Saturation jitter", params.SaturationJitter),
				floatParam("lightness_jitter", "Lightness jitter", params.LightnessJitter),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				int64Param("tick", "Tick", int64(g.tick)),
				intParam("moves", "Moves", g.moves),
				intParam("count_sand", "Sand", census[Granular]),
				intParam("count_wood", "Wood", census[Static]),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust at runtime.
func (g *Grid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "accel", Label: "Acceleration", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 4, HasMin: true, HasMax: true},
		{Key: "max_speed", Label: "Max speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 1, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a motion parameter, clamping it to the control's
// bounds. It reports false for unknown keys and non-finite values.
func (g *Grid) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	for _, ctrl := range g.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "accel":
			g.cfg.Params.Acceleration = value
		case "max_speed":
			g.cfg.Params.MaxSpeed = value
		}
		return true
	}
	return false
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
