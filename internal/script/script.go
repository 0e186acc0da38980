// Package script resolves host-facing method calls into typed engine
// operations. The method set is a fixed table; arguments arrive loosely
// typed and are coerced at this boundary. Anything that does not match is a
// no-op, never a failure.
package script

// Exposed method names.
const (
	MethodSetRule         = "setRule"
	MethodClear           = "clear"
	MethodAddStampAtPoint = "addStampAtPoint"
	MethodRunSimulation   = "runSimulation"
	MethodStopSimulation  = "stopSimulation"
	MethodNextStamp       = "nextStamp"
)

var methods = map[string]bool{
	MethodSetRule:         true,
	MethodClear:           true,
	MethodAddStampAtPoint: true,
	MethodRunSimulation:   true,
	MethodStopSimulation:  true,
	MethodNextStamp:       true,
}

// Engine is the command surface the dispatcher drives.
type Engine interface {
	SetRule(rule string)
	Clear()
	AddStampAtPoint(x, y int)
	Run(mode string) error
	Stop()
	NextStamp()
}

// HasMethod reports whether name is an exposed method.
func HasMethod(name string) bool { return methods[name] }

// Dispatch invokes method on e with the given loosely-typed arguments. It
// returns true when the method was recognized and its arguments coerced;
// otherwise nothing is invoked and false is returned. A Run error also
// reports false so the host can surface it.
func Dispatch(e Engine, method string, args []any) bool {
	switch method {
	case MethodSetRule:
		s, ok := stringArg(args, 0)
		if !ok {
			return false
		}
		e.SetRule(s)
	case MethodClear:
		e.Clear()
	case MethodAddStampAtPoint:
		x, okX := intArg(args, 0)
		y, okY := intArg(args, 1)
		if !okX || !okY {
			return false
		}
		e.AddStampAtPoint(x, y)
	case MethodRunSimulation:
		s, ok := stringArg(args, 0)
		if !ok {
			return false
		}
		if err := e.Run(s); err != nil {
			return false
		}
	case MethodStopSimulation:
		e.Stop()
	case MethodNextStamp:
		e.NextStamp()
	default:
		return false
	}
	return true
}

func stringArg(args []any, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

func intArg(args []any, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch v := args[i].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	}
	return 0, false
}
