package sand

import (
	"strconv"

	"minautomata/internal/core"
)

// Parameters reports the world configuration and live counters.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.Census()
	counts := make([]core.Parameter, 0, kindCount)
	for _, k := range Kinds() {
		if k == Background {
			continue
		}
		counts = append(counts, intParam("count_"+k.String(), k.String(), census[k]))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Reset",
			Params: []core.Parameter{
				boolParam("floor", "Concrete floor", w.cfg.Floor),
				floatParam("scatter", "Scatter fraction", w.cfg.Scatter),
				intParam("cornucopias", "Cornucopias", w.cfg.Cornucopias),
			},
		},
		{
			Name:   "State",
			Params: append([]core.Parameter{uint64Param("ticks", "Ticks", w.ticks)}, counts...),
		},
	}
	return core.ParameterSnapshot{Groups: groups}
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

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
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
