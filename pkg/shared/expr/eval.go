// Package expr evaluates boolean expressions against a message payload.
// The payload is exposed to the expression as `payload`, together with a
// small set of conversion helpers and the sprig function map.
package expr

import (
	"encoding/json"
	"fmt"
	"strconv"

	sprig "github.com/Masterminds/sprig/v3"
	"github.com/antonmedv/expr"
)

var sprigFuncMap = sprig.GenericFuncMap()

const root = "payload"

// EvalBool evaluates the expression against the given message and expects a
// boolean result.
func EvalBool(expression string, msg []byte) (bool, error) {
	env := getFuncMap(map[string]interface{}{
		root: string(msg),
	})
	result, err := expr.Eval(expression, env)
	if err != nil {
		return false, fmt.Errorf("unable to evaluate expression '%s': %s", expression, err)
	}
	resultBool, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("unable to cast expression result '%v' to bool", result)
	}
	return resultBool, nil
}

func getFuncMap(m map[string]interface{}) map[string]interface{} {
	env := make(map[string]interface{}, len(m)+4)
	for k, v := range m {
		env[k] = v
	}
	env["sprig"] = sprigFuncMap
	env["json"] = _json
	env["int"] = _int
	env["string"] = _string
	return env
}

func _json(v interface{}) map[string]interface{} {
	x := make(map[string]interface{})
	switch w := v.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(w, &x); err != nil {
			panic(fmt.Errorf("cannot convert %q to object: %v", v, err))
		}
		return x
	case string:
		if err := json.Unmarshal([]byte(w), &x); err != nil {
			panic(fmt.Errorf("cannot convert %q to object: %v", v, err))
		}
		return x
	default:
		panic("unknown type")
	}
}

func _int(v interface{}) int {
	switch w := v.(type) {
	case []byte:
		i, err := strconv.Atoi(string(w))
		if err != nil {
			panic(fmt.Errorf("cannot convert %q to an int", v))
		}
		return i
	case string:
		i, err := strconv.Atoi(w)
		if err != nil {
			panic(fmt.Errorf("cannot convert %q to int", v))
		}
		return i
	case float64:
		return int(w)
	case int:
		return w
	default:
		panic(fmt.Errorf("cannot convert %q to int", v))
	}
}

func _string(v interface{}) string {
	switch w := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(w)
	default:
		return fmt.Sprintf("%v", v)
	}
}
