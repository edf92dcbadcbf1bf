package schema

import (
	"encoding/json"
	"fmt"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violation reports a value that failed structural validation against a
// schema. It wraps the validator's error.
type Violation struct {
	Err error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("schema violation: %v", v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Generate reflects a JSON Schema from a Go value using invopop/jsonschema
// and returns it in map form, the shape LLM function-calling APIs expect.
// Fields are required unless their json tag carries omitempty; additional
// properties are rejected.
func Generate(v interface{}) map[string]interface{} {
	reflector := invopop.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(v)

	raw, err := json.Marshal(s)
	if err != nil {
		return nil
	}

	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Validate checks raw JSON against a schema in map form. A non-conforming
// value yields a *Violation; a malformed schema or input yields a plain
// error. Pure structural check, no I/O.
func Validate(raw json.RawMessage, schemaMap map[string]interface{}) error {
	schemaBytes, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := jsonschema.CompileString("", string(schemaBytes))
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid JSON input: %w", err)
	}

	if err := compiled.Validate(data); err != nil {
		return &Violation{Err: err}
	}

	return nil
}

// ValidateMap checks already-decoded arguments against a schema in map form.
func ValidateMap(params map[string]interface{}, schemaMap map[string]interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return Validate(raw, schemaMap)
}
