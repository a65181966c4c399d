package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Errors returned by Decode, Load and Build. Check them with errors.Is.
var (
	ErrUnknownFormat   = errors.New("unknown document format")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrTemplateCycle   = errors.New("template cycle")
	ErrInvalidValue    = errors.New("invalid value")
)

// Format identifies a document encoding.
type Format int

const (
	YAML Format = iota
	TOML
	HCL
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case HCL:
		return "hcl"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".hcl":
		return HCL, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Document is a decoded layout document.
type Document struct {
	Templates map[string]*NodeSpec `yaml:"templates" toml:"templates"`
	Root      *NodeSpec            `yaml:"root" toml:"root"`

	// Dir is the directory texture paths are resolved against. Load sets it
	// to the document's directory.
	Dir string `yaml:"-" toml:"-"`
}

// NodeSpec describes one node. Unset pointer fields inherit from the
// node's template, if any.
type NodeSpec struct {
	ID       string `yaml:"id" toml:"id" hcl:"id,optional"`
	Template string `yaml:"template" toml:"template" hcl:"template,optional"`

	Fit          *string `yaml:"fit" toml:"fit" hcl:"fit,optional"`
	WidthPolicy  *string `yaml:"width_policy" toml:"width_policy" hcl:"width_policy,optional"`
	HeightPolicy *string `yaml:"height_policy" toml:"height_policy" hcl:"height_policy,optional"`

	X      *int `yaml:"x" toml:"x" hcl:"x,optional"`
	Y      *int `yaml:"y" toml:"y" hcl:"y,optional"`
	Width  *int `yaml:"width" toml:"width" hcl:"width,optional"`
	Height *int `yaml:"height" toml:"height" hcl:"height,optional"`

	XAlign      *string `yaml:"x_align" toml:"x_align" hcl:"x_align,optional"`
	YAlign      *string `yaml:"y_align" toml:"y_align" hcl:"y_align,optional"`
	MainAxis    *string `yaml:"main_axis" toml:"main_axis" hcl:"main_axis,optional"`
	InnerMargin *int    `yaml:"inner_margin" toml:"inner_margin" hcl:"inner_margin,optional"`
	ChildGap    *int    `yaml:"child_gap" toml:"child_gap" hcl:"child_gap,optional"`

	Color     *string        `yaml:"color" toml:"color" hcl:"color,optional"`
	Text      *string        `yaml:"text" toml:"text" hcl:"text,optional"`
	TextColor *string        `yaml:"text_color" toml:"text_color" hcl:"text_color,optional"`
	NinePatch *NinePatchSpec `yaml:"nine_patch" toml:"nine_patch" hcl:"nine_patch,block"`

	Children []*NodeSpec `yaml:"children" toml:"children" hcl:"node,block"`
}

// NinePatchSpec describes a nine-patch texture. Texture is a PNG, JPEG or
// GIF path relative to the document.
type NinePatchSpec struct {
	Texture string `yaml:"texture" toml:"texture" hcl:"texture"`
	Margin  int    `yaml:"margin" toml:"margin" hcl:"margin,optional"`
	Scale   int    `yaml:"scale" toml:"scale" hcl:"scale,optional"`
}

// Load reads and decodes the document at path, choosing the format from
// its extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	doc, err := decode(data, format, path)
	if err != nil {
		return nil, err
	}
	doc.Dir = filepath.Dir(path)
	return doc, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	return decode(data, format, "layout."+format.String())
}

func decode(data []byte, format Format, filename string) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(doc)
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case HCL:
		err = decodeHCL(data, filename, doc)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s layout %s: %w", format, filename, err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("%s: missing root node: %w", filename, ErrInvalidValue)
	}
	return doc, nil
}

type hclDocument struct {
	Templates []*hclTemplate `hcl:"template,block"`
	Root      *NodeSpec      `hcl:"root,block"`
}

type hclTemplate struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

func decodeHCL(data []byte, filename string, doc *Document) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return diags
	}

	var parsed hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return diags
	}

	doc.Root = parsed.Root
	if len(parsed.Templates) > 0 {
		doc.Templates = make(map[string]*NodeSpec, len(parsed.Templates))
	}
	for _, t := range parsed.Templates {
		if _, dup := doc.Templates[t.Name]; dup {
			return fmt.Errorf("template %q defined twice: %w", t.Name, ErrInvalidValue)
		}
		spec := &NodeSpec{}
		if diags := gohcl.DecodeBody(t.Body, nil, spec); diags.HasErrors() {
			return fmt.Errorf("template %q: %w", t.Name, diags)
		}
		doc.Templates[t.Name] = spec
	}
	return nil
}
