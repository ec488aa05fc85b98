package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/ytget/meme-maker/internal/catalog"
	"github.com/ytget/meme-maker/internal/session"
)

func newAlbumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "albums",
		Short: "List the album catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().Headers("ID", "NAME", "IMAGES")
			for _, album := range catalog.ListAlbums() {
				t.Row(album.ID, album.Name, strconv.Itoa(album.ImageCount))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func newImagesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "images <albumId>",
		Short: "List the images of an album",
		Example: `  # First ten images of an album
  memecli images menherachan --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			album, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", session.ErrUnknownAlbum, args[0])
			}

			images := album.Images()
			if limit > 0 && limit < len(images) {
				images = images[:limit]
			}

			t := table.New().Headers("ID", "URL", "HIGH RES URL")
			for _, img := range images {
				t.Row(img.ID, img.URL, img.HighResURL)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many images (0 for all)")
	return cmd
}
