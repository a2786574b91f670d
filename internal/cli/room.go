package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgallery/pkg/gallery"
)

// roomCommand lists the four displays of a room.
func (c *CLI) roomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room <room>",
		Short: "List the displays hung in a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := gallery.ParseRoom(args[0])
			if err != nil {
				return err
			}
			return writeRoom(cmd.OutOrStdout(), room)
		},
	}
	return cmd
}

func writeRoom(w io.Writer, room int64) error {
	ids, err := gallery.RoomDisplays(room)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Room %d", room)))
	for _, id := range ids {
		s, err := gallery.Summarize(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  %-6s %s\n",
			StyleNumber.Render(fmt.Sprintf("%6d", id)),
			s.Ratio.Name,
			StyleValue.Render(quoteTitle(s.Title)))
	}
	return nil
}
