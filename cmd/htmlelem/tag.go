package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlelem/internal/errors"
	"github.com/vango-dev/htmlelem/pkg/elem"
)

type tagOptions struct {
	id      string
	classes []string
	attrs   []string
}

func tagCmd(c *cli) *cobra.Command {
	opts := &tagOptions{}

	cmd := &cobra.Command{
		Use:   "tag <name> [text...]",
		Short: "Print a single element",
		Long: `Print a single element with the given attributes and text children.

Each text argument becomes its own text child. Attributes outside the
allow-list (and not data-* or on*) are dropped with a warning.`,
		Example: `  htmlelem tag p "Hello, World!"
  htmlelem tag a --attr href=/docs --class nav --class active Docs
  htmlelem tag img --attr src=logo.png --attr alt=Logo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := buildTag(c, cmd, args[0], args[1:], opts)
			if err != nil {
				return err
			}
			if err := c.renderer.RenderToWriter(cmd.Context(), cmd.OutOrStdout(), node); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Element id")
	cmd.Flags().StringSliceVar(&opts.classes, "class", nil, "Class tokens (repeatable)")
	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Attribute as name=value (repeatable)")

	return cmd
}

// buildTag assembles the element described by the tag command's arguments.
func buildTag(c *cli, cmd *cobra.Command, name string, text []string, opts *tagOptions) (*elem.Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("E202").WithSuggestion("Pass a tag name, e.g. htmlelem tag p")
	}

	attrs, err := parseAttrFlags(opts.attrs)
	if err != nil {
		return nil, err
	}

	children := make([]any, len(text))
	for i, t := range text {
		children[i] = t
	}
	// The node carries the escape function so attribute values set below are
	// escaped the same way as its text.
	node := elem.New(name, elem.WithEscape(c.escapeFn), elem.WithChildren(children...))

	if opts.id != "" {
		node.SetID(opts.id)
	}
	for _, a := range attrs {
		if !node.SetAttribute(a.Key, a.Value) {
			c.logger.Warn("attribute dropped", "tag", name, "attribute", a.Key)
			warn(cmd, "attribute %q is not allowed on <%s> and was dropped", a.Key, name)
		}
	}
	for _, class := range opts.classes {
		node.AddClass(class)
	}

	if node.SelfClosing() && len(text) > 0 {
		c.logger.Debug("children of void tag not rendered", "tag", name, "children", len(text))
	}
	return node, nil
}

// parseAttrFlags splits name=value pairs. A value may itself contain "=".
func parseAttrFlags(flags []string) (elem.Attrs, error) {
	attrs := make(elem.Attrs, 0, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.New("E201").
				WithDetail(fmt.Sprintf("Attribute flag %q is not of the form name=value", f)).
				WithSuggestion("Use --attr href=/docs")
		}
		attrs = append(attrs, elem.Attr{Key: name, Value: value})
	}
	return attrs, nil
}
