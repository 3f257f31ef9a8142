package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression is a boolean expr-lang expression evaluated against a projected record,
// eg. `status == "running" && location.latitude > 53.3`
type Expression struct {
	source  string
	program *vm.Program
}

func NewExpression(source string) (*Expression, error) {
	program, err := expr.Compile(source, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	return &Expression{
		source:  source,
		program: program,
	}, nil
}

func (e *Expression) String() string {
	return e.source
}

func (e *Expression) Matches(record any) (bool, error) {
	env, ok := asMap(Project(record))
	if !ok {
		env = map[string]any{}
	}

	output, err := expr.Run(e.program, env)
	if err != nil {
		return false, err
	}

	matched, _ := output.(bool)

	return matched, nil
}
