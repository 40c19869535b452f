package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/examkit/proctor/pkg/models"
)

// SchemaFor reflects a JSON schema from T's struct tags. The schema is
// inlined (no $ref) so it can be embedded directly in a prompt.
func SchemaFor[T any]() (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(T))
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// ExtractJSON pulls the JSON object out of a model reply: code fences are
// stripped and anything before the first '{' or after the last '}' is
// discarded. Models decorate JSON output despite instructions.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// GenerateStructured runs a completion that must return a JSON object
// matching T's schema. Invalid output triggers exactly one re-ask carrying
// the validation error; a second failure is returned to the caller. Usage is
// accumulated across both attempts.
func GenerateStructured[T any](ctx context.Context, client Client, req Request) (*T, models.TokenUsage, error) {
	var usage models.TokenUsage

	schema, err := SchemaFor[T]()
	if err != nil {
		return nil, usage, err
	}

	req.JSONMode = true
	req.System = req.System +
		"\n\nRespond with a single JSON object matching this schema. No prose, no code fences.\nSchema:\n" +
		string(schema)

	resp, err := client.Generate(ctx, req)
	if err != nil {
		return nil, usage, err
	}
	usage.Add(resp.Usage)

	out, parseErr := parseAndValidate[T](schema, resp.Text)
	if parseErr == nil {
		return out, usage, nil
	}

	// One corrective round trip with the validation error in context.
	retry := req
	retry.Messages = append(append([]Message(nil), req.Messages...),
		Message{Role: models.RoleAssistant, Content: resp.Text},
		Message{Role: models.RoleUser, Content: fmt.Sprintf(
			"The previous reply was not a valid JSON object for the schema: %v. Reply again with only the corrected JSON object.", parseErr)},
	)

	resp, err = client.Generate(ctx, retry)
	if err != nil {
		return nil, usage, err
	}
	usage.Add(resp.Usage)

	out, parseErr = parseAndValidate[T](schema, resp.Text)
	if parseErr != nil {
		return nil, usage, fmt.Errorf("structured output failed after re-ask: %w", parseErr)
	}
	return out, usage, nil
}

func parseAndValidate[T any](schema json.RawMessage, text string) (*T, error) {
	raw := ExtractJSON(text)

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return nil, fmt.Errorf("response violates schema: %s", strings.Join(msgs, "; "))
	}

	out := new(T)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return out, nil
}
