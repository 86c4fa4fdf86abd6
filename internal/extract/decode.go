package extract

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jackzampolin/dramatis/internal/types"
)

//go:embed payload_schema.json
var payloadSchemaJSON string

var payloadSchema = jsonschema.MustCompileString("payload_schema.json", payloadSchemaJSON)

// ResponseSchema returns the JSON schema sent to providers as the
// structured-output response shape.
func ResponseSchema() json.RawMessage {
	return json.RawMessage(payloadSchemaJSON)
}

// DecodePayload validates raw against the extraction payload schema and
// decodes it into a typed payload. Any malformed or schema-violating body
// yields an error wrapping ErrSchemaParse; a partially-typed payload is
// never returned.
func DecodePayload(raw []byte) (*types.ExtractionPayload, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrSchemaParse)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrSchemaParse, err)
	}
	if err := payloadSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaParse, err)
	}

	var payload types.ExtractionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaParse, err)
	}
	return &payload, nil
}
