package spfxdata

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"
)

// ParseEffects parses an effects data file.
//
// A missing or empty document, or one without an 'effects' list, is a
// load error and aborts the call. Unknown fields on individual effect
// records are warned about and skipped, matching the tolerant
// per-record policy of the rest of the loaders.
func ParseEffects(r io.Reader) (*EffectDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects data: %w", err)
	}

	var doc EffectDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse effects data: %w", err)
	}
	if doc.Effects == nil {
		return nil, fmt.Errorf("malformed effects data: missing root element 'effects'")
	}
	if len(doc.Effects) == 0 {
		return nil, fmt.Errorf("malformed effects data: does not contain elements")
	}

	warnUnknownFields(data, "effects", map[string]bool{
		"name": true, "anim": true, "ttl": true, "gfx": true,
	})

	return &doc, nil
}

// ParseTrails parses a trail colour data file. The same load-error
// policy as ParseEffects applies.
func ParseTrails(r io.Reader) (*TrailDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read trail data: %w", err)
	}

	var doc TrailDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse trail data: %w", err)
	}
	if doc.Trails == nil {
		return nil, fmt.Errorf("malformed trail data: missing root element 'trails'")
	}
	if len(doc.Trails) == 0 {
		return nil, fmt.Errorf("malformed trail data: does not contain elements")
	}

	warnUnknownFields(data, "trails", map[string]bool{
		"id": true, "idle": true, "glow": true, "afterburn": true, "jumping": true,
	})

	return &doc, nil
}

// warnUnknownFields re-decodes the document generically and logs a
// warning for every record key that is not in the known set. Unknown
// keys are tolerated so older engines can read newer data files.
func warnUnknownFields(data []byte, listKey string, known map[string]bool) {
	var raw map[string][]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return
	}
	for _, record := range raw[listKey] {
		name := recordName(record)
		for key := range record {
			if !known[key] {
				log.Printf("[spfxdata] Warning: record '%s' has unknown field '%s'", name, key)
			}
		}
	}
}

// recordName pulls a display name out of a generic record for warning
// messages. Effect records use 'name', trail records use 'id'.
func recordName(record map[string]yaml.Node) string {
	for _, key := range []string{"name", "id"} {
		if node, ok := record[key]; ok {
			return node.Value
		}
	}
	return "?"
}
