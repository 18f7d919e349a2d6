package elementary

import (
	"strconv"

	"cells/internal/core"
	"cells/pkg/wolfram"
)

// Parameters reports the board settings for the overlay and the
// terminal commands.
func (b *Board) Parameters() core.ParameterSnapshot {
	boundary := "zero"
	if b.cfg.Boundary == wolfram.BoundaryWrap {
		boundary = "wrap"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", b.cfg.Width),
				intParam("h", "Height", b.cfg.Height),
				int64Param("seed", "Seed", b.seed),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("rule", "Rule", b.rule),
				stringParam("boundary", "Boundary", boundary),
				stringParam("mode", "Seed mode", string(b.cfg.SeedMode)),
				intParam("row", "Row", b.row),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
