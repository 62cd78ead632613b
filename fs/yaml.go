package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pystandards"
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders doc as YAML with the same structure and key order as
// its JSON encoding. Multi-line text uses literal block style.
func EncodeYAML(doc *pystandards.Export) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := jsonToNode(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to build yaml document: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeYAML parses a YAML export into doc.
func DecodeYAML(data []byte, doc *pystandards.Export) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return pystandards.Errorf(pystandards.EINVALID, "invalid yaml export: %v", err)
	}

	var buf bytes.Buffer
	if err := nodeToJSON(&buf, &root); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), doc)
}

func jsonToNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected string key, got %v", keyTok)
				}
				value, err := jsonToNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, stringNode(key), value)
			}
			_, err := dec.Token()
			return node, err
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				value, err := jsonToNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, value)
			}
			_, err := dec.Token()
			return node, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return stringNode(v), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}

func nodeToJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return pystandards.Errorf(pystandards.EINVALID, "empty yaml export")
		}
		return nodeToJSON(buf, node.Content[0])
	case yaml.AliasNode:
		return nodeToJSON(buf, node.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := nodeToJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := nodeToJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float":
			buf.WriteString(node.Value)
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			fmt.Fprint(buf, b)
		case "!!null":
			buf.WriteString("null")
		default:
			return writeJSONString(buf, node.Value)
		}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
