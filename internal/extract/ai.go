package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ysbenali/wasales-bridge/internal/ai"
)

// Extractor runs the hybrid pipeline: deterministic rules always, the
// model path on top when a completion collaborator is wired in. The model
// result is used only when it passes schema validation; any parse or
// validation failure falls back to the deterministic result. The two
// paths are never merged field by field.
type Extractor struct {
	ai  ai.AI
	log *zap.Logger
}

// New builds an Extractor. A nil collaborator disables the model path.
func New(aiClient ai.AI, log *zap.Logger) *Extractor {
	return &Extractor{ai: aiClient, log: log.Named("extract")}
}

func (e *Extractor) Extract(ctx context.Context, text string) Result {
	det := Extract(text)
	if e.ai == nil {
		return det
	}

	res, err := e.modelExtract(ctx, text, det.Language)
	if err != nil {
		// Unavailable or malformed model output is not an error for the
		// caller; the rule-based result stands.
		e.log.Debug("model extraction fell back", zap.Error(err))
		return det
	}
	return res
}

type modelCandidate struct {
	Value      string `json:"value"`
	Confidence string `json:"confidence"`
}

type modelPayload struct {
	Name     modelCandidate `json:"name"`
	City     modelCandidate `json:"city"`
	Address  modelCandidate `json:"address"`
	Phone    modelCandidate `json:"phone"`
	Language string         `json:"language"`
	FollowUp string         `json:"follow_up"`
}

func (e *Extractor) modelExtract(ctx context.Context, text, languageHint string) (Result, error) {
	input, err := json.Marshal(map[string]string{
		"text":          text,
		"language_hint": languageHint,
	})
	if err != nil {
		return Result{}, err
	}

	raw, err := e.ai.Complete(ctx, ExtractorPrompt, string(input))
	if err != nil {
		return Result{}, err
	}

	payload, err := firstJSONObject(raw)
	if err != nil {
		return Result{}, err
	}

	var p modelPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Result{}, fmt.Errorf("model payload: %w", err)
	}
	return validateModelPayload(p, languageHint)
}

// validateModelPayload enforces the schema: confidence values must be one
// of the four allowed levels, phones must already be canonical and cities
// must be in the gazetteer. A candidate with a value but confidence "none"
// is contradictory and rejected.
func validateModelPayload(p modelPayload, languageHint string) (Result, error) {
	res := Result{Source: SourceModel, Language: p.Language, FollowUp: p.FollowUp}
	if res.Language == "" {
		res.Language = languageHint
	}

	fields := []struct {
		name string
		in   modelCandidate
		out  *Candidate
	}{
		{"name", p.Name, &res.Name},
		{"city", p.City, &res.City},
		{"address", p.Address, &res.Address},
		{"phone", p.Phone, &res.Phone},
	}
	for _, f := range fields {
		conf, ok := ParseConfidence(f.in.Confidence)
		if !ok {
			return Result{}, fmt.Errorf("field %s: bad confidence %q", f.name, f.in.Confidence)
		}
		if f.in.Value == "" {
			continue
		}
		if conf == ConfidenceNone {
			return Result{}, fmt.Errorf("field %s: value with confidence none", f.name)
		}
		f.out.Value = f.in.Value
		f.out.Confidence = conf
	}

	if res.Phone.Value != "" && !IsCanonicalPhone(res.Phone.Value) {
		return Result{}, fmt.Errorf("phone %q not canonical", res.Phone.Value)
	}
	if res.City.Value != "" {
		canonical, ok := CanonicalCity(res.City.Value)
		if !ok {
			return Result{}, fmt.Errorf("city %q not in gazetteer", res.City.Value)
		}
		res.City.Value = canonical
	}
	return res, nil
}

// firstJSONObject pulls the first balanced {...} out of a reply, tolerating
// prose around it. Models wrap payloads in pleasantries no matter what the
// prompt says.
func firstJSONObject(raw string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range raw {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], nil
				}
			}
		}
	}
	return "", errors.New("no JSON object in reply")
}
