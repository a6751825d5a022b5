package webhooks

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// dataSchemas pins the required shape of each variant's data object. Decoding
// stays strict: a delivery whose data omits a required field is rejected
// instead of surfacing zero values to the caller. Fields beyond the required
// set are allowed, so the service can add optional fields without breaking
// older SDK versions.
var dataSchemas = compileDataSchemas(map[EventType][]string{
	EventEmailSent:          {"emailId", "to"},
	EventEmailDelivered:     {"emailId", "to"},
	EventEmailOpened:        {"emailId"},
	EventEmailClicked:       {"emailId", "url"},
	EventEmailBounced:       {"emailId", "bounceReason"},
	EventUnsubscribeCreated: {"email"},
})

// validateEventData checks a variant's raw data object against its schema.
func validateEventData(typ EventType, raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing data object")
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return dataSchemas[typ].Validate(doc)
}

// compileDataSchemas builds one compiled schema per variant requiring the
// given non-empty string fields. The schema documents are static, so a
// compilation failure is a programming error and panics at init.
func compileDataSchemas(required map[EventType][]string) map[EventType]*jsonschema.Schema {
	compiled := make(map[EventType]*jsonschema.Schema, len(required))
	for typ, fields := range required {
		props := make(map[string]any, len(fields))
		for _, name := range fields {
			props[name] = map[string]any{"type": "string", "minLength": 1}
		}
		doc := map[string]any{
			"type":       "object",
			"required":   fields,
			"properties": props,
		}

		// Round-trip through JSON so the compiler sees canonical types.
		rawDoc, err := json.Marshal(doc)
		if err != nil {
			panic(fmt.Sprintf("webhooks: marshal %s schema: %v", typ, err))
		}
		parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(rawDoc))
		if err != nil {
			panic(fmt.Sprintf("webhooks: parse %s schema: %v", typ, err))
		}

		url := "driftmail://webhooks/" + string(typ)
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, parsed); err != nil {
			panic(fmt.Sprintf("webhooks: add %s schema resource: %v", typ, err))
		}
		schema, err := c.Compile(url)
		if err != nil {
			panic(fmt.Sprintf("webhooks: compile %s schema: %v", typ, err))
		}
		compiled[typ] = schema
	}
	return compiled
}
