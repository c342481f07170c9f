package params

import (
	"fmt"
	"strings"

	"github.com/tacogips/scaffold/internal/template/model"
)

// BuildContext merges collected values with the reserved keys and the
// pass-through overrides. Pass-through overrides are override keys that are
// neither declared parameters nor reserved; they are available to templates
// as-is (e.g. a description given with --set).
func BuildContext(values map[string]model.Value, name, targetDir string, overrides Overrides) (model.Context, error) {
	if strings.TrimSpace(name) == "" {
		return model.Context{}, newValidationError(model.KeyName, "", "a project name is required")
	}

	merged := make(map[string]model.Value, len(values)+len(overrides)+2)
	for k, raw := range overrides {
		if model.IsReservedKey(k) {
			continue
		}
		if _, declared := values[k]; declared {
			continue
		}
		v, err := model.ValueOf(raw)
		if err != nil {
			return model.Context{}, newValidationError(k, fmt.Sprint(raw), err.Error())
		}
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	merged[model.KeyName] = model.StringValue(name)
	merged[model.KeyTargetDir] = model.StringValue(targetDir)

	return model.NewContext(merged), nil
}
