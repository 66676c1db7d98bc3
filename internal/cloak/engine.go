package cloak

import (
	"fmt"
	"log/slog"

	"github.com/IliaW/cloak-api/internal/model"
)

// Decide runs the evaluators in their fixed order and returns the routing
// decision with a full per-filter trace. It is a pure function of its
// arguments: no I/O, no shared state, safe for any number of concurrent
// callers. Every evaluator appears in the trace, short-circuited ones as skip.
//
// First block wins and yields the white page. If nothing blocks and nothing
// short-circuits, the default is the black page.
func Decide(ctx model.RequestContext, cfg ResolvedFilters) model.DecisionTrace {
	trace := model.DecisionTrace{
		Decision: model.DecisionBlack,
		MlScore:  ctx.MlScore,
		Filters:  make(map[string]string, len(evaluators)),
	}

	decided := false
	for _, e := range evaluators {
		if decided {
			trace.Filters[e.name] = "skip: not evaluated"
			continue
		}
		verdict, detail := safeEval(e, &ctx, &cfg)
		trace.Filters[e.name] = verdict.String() + ": " + detail
		switch {
		case verdict == VerdictBlock:
			trace.Decision = model.DecisionBlocked
			trace.Reason = e.name + ": " + detail
			decided = true
		case verdict == VerdictAllow && e.shortCircuit:
			trace.Decision = model.DecisionBlack
			trace.Reason = e.name + ": " + detail
			decided = true
		}
	}
	if trace.Reason == "" {
		trace.Reason = "passed all checks"
	}

	return trace
}

// safeEval downgrades a panicking evaluator to a skip. One faulty filter must
// never take down routing.
func safeEval(e evaluator, ctx *model.RequestContext, cfg *ResolvedFilters) (verdict Verdict, detail string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("filter evaluator fault.", slog.String("filter", e.name),
				slog.String("err", fmt.Sprintf("%v", r)))
			verdict = VerdictSkip
			detail = "evaluator fault"
		}
	}()
	return e.eval(ctx, cfg)
}
