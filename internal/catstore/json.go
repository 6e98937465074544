package catstore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The persisted document is a flat JSON object, category name -> keyword
// list. encoding/json maps lose key order, and the categorizer's tie-break
// depends on insertion order, so the codec here walks the token stream on
// decode and emits keys explicitly on encode.

func unmarshalCategories(data []byte) (names []string, keywords map[string][]string, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("reading document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	keywords = make(map[string][]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading category name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected category name, got %v", tok)
		}

		var kws []string
		if err := dec.Decode(&kws); err != nil {
			return nil, nil, fmt.Errorf("reading keywords for %q: %w", name, err)
		}
		if kws == nil {
			kws = []string{}
		}

		if _, seen := keywords[name]; !seen {
			names = append(names, name)
		}
		keywords[name] = kws
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("reading document end: %w", err)
	}
	return names, keywords, nil
}

func marshalCategories(names []string, keywords map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(keywords[name])
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(names)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
