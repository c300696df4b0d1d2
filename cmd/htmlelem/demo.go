package main

import (
	"fmt"

	"github.com/spf13/cobra"

	. "github.com/vango-dev/htmlelem/el"
	"github.com/vango-dev/htmlelem/pkg/elem"
)

func demoCmd(c *cli) *cobra.Command {
	var shorthand bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the example list",
		Long: `Print an unordered list with four items, built once with the
options constructor and once with the positional shorthand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := []*elem.Node{demoList(), demoListShorthand()}
			if shorthand {
				lists = lists[1:]
			}

			out := cmd.OutOrStdout()
			for _, list := range lists {
				if err := c.renderer.RenderToWriter(cmd.Context(), out, list); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&shorthand, "shorthand", false, "Print only the list built with the shorthand")

	return cmd
}

func demoList() *elem.Node {
	list := elem.New("ul",
		elem.WithAttributes(map[string]string{"id": "mylist", "class": "fancy-list"}),
		elem.WithChildren(
			elem.New("li", elem.WithChildren("Item 1")),
			elem.New("li", elem.WithChildren("Item 2")),
			elem.New("li", elem.WithChildren("Item 3")),
		),
	)
	list.Append(elem.New("li", elem.WithChildren("Item 4")))
	return list
}

func demoListShorthand() *elem.Node {
	list := Ul(Attributes("id", "mylist", "class", "fancy-list"), []any{
		Li(nil, "Item 1"),
		Li(nil, "Item 2"),
		Li(nil, "Item 3"),
	})
	list.Append(Li(nil, "Item 4"))
	return list
}
