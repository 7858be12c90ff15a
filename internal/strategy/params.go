package strategy

import (
	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Params is the flat parameter map a host hands to Initialize. Values are
// plain scalars as they come out of a YAML run config.
type Params map[string]any

// Decode fills target from the params via a YAML round trip and then checks
// its validate tags. Unknown keys are ignored so hosts can carry extra
// bookkeeping fields; missing or out-of-range values surface as parameter
// errors.
func (p Params) Decode(target any) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "failed to encode parameters", err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidType, "failed to decode parameters", err)
	}

	if err := validator.New().Struct(target); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid parameters", err)
	}

	return nil
}

// SchemaFor returns the JSON schema of a strategy's parameter struct, for
// hosts that render parameter forms or validate run configs up front.
func SchemaFor(target any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	return reflector.Reflect(target)
}
