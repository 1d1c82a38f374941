package hexpress

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// parseFrontmatter decodes the YAML frontmatter block of source into meta and
// returns the raw body below the closing delimiter.
func parseFrontmatter(source []byte, meta any) ([]byte, error) {
	body, err := frontmatter.Parse(bytes.NewReader(source), meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return body, nil
}

// renderFrontmatter serializes meta between --- delimiters and appends body.
// Files written this way parse back with parseFrontmatter unchanged.
func renderFrontmatter(meta any, body string) ([]byte, error) {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(frontmatterDelim + "\n")
	buf.Write(out)
	buf.WriteString(frontmatterDelim + "\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}
