package layoutfile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/grindlemire/go-boxtree"
	"golang.org/x/image/font"
)

// BuildOptions supplies the collaborators text nodes need.
type BuildOptions struct {
	// Measurer sizes text nodes. Without one text nodes have no intrinsic size.
	Measurer boxtree.Measurer
	// Face is the font face of every text node.
	Face font.Face
	// Dir overrides Document.Dir for resolving texture paths.
	Dir string
}

// Build creates the node tree described by the document. Every node's style
// is validated.
func (d *Document) Build(opts BuildOptions) (*boxtree.Node, error) {
	if d.Root == nil {
		return nil, fmt.Errorf("missing root node: %w", ErrInvalidValue)
	}
	dir := opts.Dir
	if dir == "" {
		dir = d.Dir
	}
	b := &builder{
		opts:     opts,
		dir:      dir,
		resolver: newResolver(d.Templates),
		textures: make(map[string]image.Image),
	}
	return b.node(d.Root, "root")
}

type builder struct {
	opts     BuildOptions
	dir      string
	resolver *resolver
	textures map[string]image.Image
}

func (b *builder) node(raw *NodeSpec, path string) (*boxtree.Node, error) {
	if raw.ID != "" {
		path = raw.ID
	}
	spec, err := b.resolver.apply(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	n, err := b.newNode(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := n.Style().Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidValue, err)
	}

	for i, c := range spec.Children {
		if c == nil {
			continue
		}
		child, err := b.node(c, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}

func (b *builder) newNode(spec *NodeSpec) (*boxtree.Node, error) {
	var n *boxtree.Node
	if spec.Text != nil {
		if spec.Color != nil || spec.NinePatch != nil {
			return nil, fmt.Errorf("text node cannot also have color or nine_patch: %w", ErrInvalidValue)
		}
		var opts []boxtree.Option
		if spec.TextColor != nil {
			c, err := parseColor("text_color", *spec.TextColor)
			if err != nil {
				return nil, err
			}
			opts = append(opts, boxtree.WithColor(c))
		}
		n = boxtree.NewText(b.opts.Measurer, b.opts.Face, *spec.Text, opts...)
	} else {
		n = boxtree.New()
		if err := b.applyVisual(n, spec); err != nil {
			return nil, err
		}
	}
	n.SetID(spec.ID)

	style, err := applyStyle(n.Style(), spec)
	if err != nil {
		return nil, err
	}
	n.SetStyle(style)

	r := n.Rect()
	setInt(&r.X, spec.X)
	setInt(&r.Y, spec.Y)
	setInt(&r.Width, spec.Width)
	setInt(&r.Height, spec.Height)
	n.SetRect(r)
	return n, nil
}

func (b *builder) applyVisual(n *boxtree.Node, spec *NodeSpec) error {
	if spec.TextColor != nil {
		return fmt.Errorf("text_color without text: %w", ErrInvalidValue)
	}
	if spec.NinePatch != nil {
		tex, err := b.texture(spec.NinePatch.Texture)
		if err != nil {
			return err
		}
		if spec.NinePatch.Margin < 0 {
			return fmt.Errorf("nine_patch margin %d: %w", spec.NinePatch.Margin, ErrInvalidValue)
		}
		boxtree.WithNinePatch(tex, spec.NinePatch.Margin, spec.NinePatch.Scale)(n)
	}
	if spec.Color != nil {
		c, err := parseColor("color", *spec.Color)
		if err != nil {
			return err
		}
		boxtree.WithColor(c)(n)
	}
	return nil
}

func (b *builder) texture(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("nine_patch texture is empty: %w", ErrInvalidValue)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.dir, path)
	}
	if img, ok := b.textures[path]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	b.textures[path] = img
	return img, nil
}

func applyStyle(s boxtree.Style, spec *NodeSpec) (boxtree.Style, error) {
	var errs []error
	field := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w: %w", name, ErrInvalidValue, err))
		}
	}

	if spec.Fit != nil {
		switch *spec.Fit {
		case "both":
			s.WidthPolicy, s.HeightPolicy = boxtree.Fit, boxtree.Fit
		case "width":
			s.WidthPolicy, s.HeightPolicy = boxtree.Fit, boxtree.Fixed
		case "height":
			s.WidthPolicy, s.HeightPolicy = boxtree.Fixed, boxtree.Fit
		case "none":
			s.WidthPolicy, s.HeightPolicy = boxtree.Fixed, boxtree.Fixed
		default:
			errs = append(errs, fmt.Errorf("fit %q: %w", *spec.Fit, ErrInvalidValue))
		}
	}
	if spec.WidthPolicy != nil {
		p, err := boxtree.ParsePolicy(*spec.WidthPolicy)
		field("width_policy", err)
		s.WidthPolicy = p
	}
	if spec.HeightPolicy != nil {
		p, err := boxtree.ParsePolicy(*spec.HeightPolicy)
		field("height_policy", err)
		s.HeightPolicy = p
	}
	if spec.XAlign != nil {
		a, err := boxtree.ParseAlign(*spec.XAlign)
		field("x_align", err)
		s.XAlign = a
	}
	if spec.YAlign != nil {
		a, err := boxtree.ParseAlign(*spec.YAlign)
		field("y_align", err)
		s.YAlign = a
	}
	if spec.MainAxis != nil {
		a, err := boxtree.ParseAxis(*spec.MainAxis)
		field("main_axis", err)
		s.MainAxis = a
	}
	setInt(&s.InnerMargin, spec.InnerMargin)
	setInt(&s.ChildGap, spec.ChildGap)

	return s, errors.Join(errs...)
}

func parseColor(name, value string) (color.RGBA, error) {
	c, err := boxtree.ParseColor(value)
	if err != nil {
		return c, fmt.Errorf("%s: %w: %w", name, ErrInvalidValue, err)
	}
	return c, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
