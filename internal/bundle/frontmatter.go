// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

const (
	delimiter  = "---"
	dateLayout = "2006-01-02"
)

// EncodeFrontMatter renders fm as a YAML block between "---" lines,
// followed by one blank line. Strings are double-quoted; the date is a bare
// YYYY-MM-DD value and tags are a flow sequence.
func EncodeFrontMatter(fm types.FrontMatter) ([]byte, error) {
	tags := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, tag := range fm.Tags {
		tags.Content = append(tags.Content, quoted(tag))
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	add("title", quoted(fm.Title))
	add("date", &yaml.Node{Kind: yaml.ScalarNode, Value: fm.Date.Format(dateLayout)})
	add("draft", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(fm.Draft)})
	add("post_type", quoted(fm.PostType))
	add("summary", quoted(fm.Summary))
	add("tags", tags)

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	buf.WriteString(delimiter + "\n\n")
	return buf.Bytes(), nil
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: s}
}

// ReadIndex parses the index.md of the bundle at dir and returns its front
// matter and the Markdown body that follows it.
func ReadIndex(dir string) (types.FrontMatter, []byte, error) {
	path := filepath.Join(dir, indexFile)
	f, err := os.Open(path)
	if err != nil {
		return types.FrontMatter{}, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var fm types.FrontMatter
	body, err := frontmatter.MustParse(f, &fm)
	if err != nil {
		return types.FrontMatter{}, nil, fmt.Errorf("parsing front matter of %s: %w", path, err)
	}
	return fm, body, nil
}
