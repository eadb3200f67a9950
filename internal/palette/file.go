package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// fileDocument is the structured (JSON or YAML) palette file layout. A bare
// list of entries is also accepted.
type fileDocument struct {
	Name    string  `json:"name" yaml:"name"`
	Colours []Entry `json:"colours" yaml:"colours"`
}

// LoadFile loads a palette from a JSON, YAML or plain text file. The format is
// chosen by extension; unknown extensions try JSON before falling back to text.
func LoadFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(data, &name)
	case ".yaml", ".yml":
		entries, err = parseYAML(data, &name)
	default:
		if entries, err = parseJSON(data, &name); err != nil {
			entries, err = parseText(string(data))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	return newPalette(name, entries)
}

func parseJSON(data []byte, name *string) ([]Entry, error) {
	var list []Entry
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name != "" {
		*name = doc.Name
	}
	return doc.Colours, nil
}

func parseYAML(data []byte, name *string) ([]Entry, error) {
	var list []Entry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name != "" {
		*name = doc.Name
	}
	return doc.Colours, nil
}

// parseText parses a simple text format palette file.
// Format: one colour per line, either "hex", "name=hex" or "name shade=hex";
// lines starting with "//" or ";" and blank lines are skipped. A leading "#"
// followed by anything other than a hex colour is treated as a comment.
func parseText(content string) ([]Entry, error) {
	var entries []Entry

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, ";") {
			continue
		}

		key, hex, found := strings.Cut(line, "=")
		if !found {
			hex, key = line, ""
			if _, err := normaliseHex(hex); err != nil {
				// "#" starts a comment unless it starts a hex value.
				if strings.HasPrefix(line, "#") && !startsWithHex(line) {
					continue
				}
				return nil, fmt.Errorf("line %d: invalid hex colour '%s': %w", lineNum+1, hex, err)
			}
		}

		hex = strings.TrimSpace(hex)
		if _, err := normaliseHex(hex); err != nil {
			return nil, fmt.Errorf("line %d: invalid hex colour '%s': %w", lineNum+1, hex, err)
		}

		fields := strings.Fields(key)
		entry := Entry{Hex: hex, Shade: BaseShade}
		switch len(fields) {
		case 0:
			entry.Name = fmt.Sprintf("colour-%d", len(entries)+1)
		case 1:
			entry.Name = fields[0]
		default:
			entry.Name = strings.Join(fields[:len(fields)-1], "-")
			entry.Shade = fields[len(fields)-1]
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func startsWithHex(line string) bool {
	_, err := normaliseHex(strings.Fields(line)[0])
	return err == nil
}

// normaliseHex canonicalises a hex colour to lower case "#rrggbb".
func normaliseHex(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// newPalette normalises hex values, fills in missing shades and ids, and
// validates the result.
func newPalette(name string, entries []Entry) (*Palette, error) {
	prefix := slugify(name)
	out := make([]Entry, len(entries))
	for i, e := range entries {
		hex, err := normaliseHex(e.Hex)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): invalid hex %q: %w", i+1, e.Name, e.Hex, err)
		}
		e.Hex = hex
		if e.Name == "" {
			e.Name = fmt.Sprintf("colour-%d", i+1)
		}
		if e.Shade == "" {
			e.Shade = BaseShade
		}
		if e.ID == "" {
			e.ID = EntryID(prefix, e.Name, e.Shade)
		}
		out[i] = e
	}

	p := &Palette{Name: name, Entries: out}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
