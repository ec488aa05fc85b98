package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/export"
	"github.com/ytget/meme-maker/internal/model"
	"github.com/ytget/meme-maker/internal/project"
	"github.com/ytget/meme-maker/internal/render"
)

func newExportService(opts *options, p *project.Project, dir string, delay time.Duration) *export.Service {
	source := opts.assetSource()
	klog.V(1).Infof("loading images from %s, writing to %s", source, dir)

	engine := render.NewEngine(render.NewLoader(source))
	return export.NewService(p, engine, &export.DirSaver{Dir: dir}, export.WithDelay(delay))
}

// report prints one line per task and returns an error if any export failed
func report(w io.Writer, tasks []*model.ExportTask) error {
	failed := 0
	for _, task := range tasks {
		switch {
		case task.Status == model.TaskStatusError:
			failed++
			fmt.Fprintf(w, "FAIL  %s: %s\n", task.FileName, task.LastError)
		case task.RenderErr != "":
			fmt.Fprintf(w, "BLANK %s: %s\n", task.OutputPath, task.RenderErr)
		default:
			fmt.Fprintf(w, "OK    %s\n", task.OutputPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d exports failed", failed, len(tasks))
	}
	return nil
}

func newRenderCmd(opts *options) *cobra.Command {
	var entry Entry

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a single meme to 1.png",
		Example: `  memecli render --album menherachan --index 12 --top "when the build" --bottom "is green" --out ./out`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &Manifest{Memes: []Entry{entry}}
			p, err := m.Project()
			if err != nil {
				return err
			}

			svc := newExportService(opts, p, opts.outputDir(""), 0)
			task, err := svc.ExportOne(cmd.Context(), 0)
			if err != nil && task == nil {
				return err
			}
			return report(cmd.OutOrStdout(), []*model.ExportTask{task})
		},
	}

	cmd.Flags().StringVar(&entry.Album, "album", "", "Album ID")
	cmd.Flags().IntVar(&entry.Index, "index", 1, "Image number within the album, starting at 1")
	cmd.Flags().StringVar(&entry.Top, "top", "", "Top caption")
	cmd.Flags().StringVar(&entry.Bottom, "bottom", "", "Bottom caption")
	cmd.Flags().IntVar(&entry.Size, "size", model.DefaultFontSize, "Font size in pixels (10-80)")
	_ = cmd.MarkFlagRequired("album")

	return cmd
}

func newBatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Export every meme of a YAML manifest as 1.png, 2.png, ...",
		Long: `Export the memes listed in a manifest, in order, with a short pause between files.

Manifest format:

  output: ./out        # optional, --out wins
  delay_ms: 100        # optional
  memes:
    - album: menherachan
      index: 3
      top: top text
      bottom: bottom text
      size: 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadManifest(args[0])
			if err != nil {
				return err
			}
			p, err := m.Project()
			if err != nil {
				return err
			}

			svc := newExportService(opts, p, opts.outputDir(m.Output), m.Delay(export.DefaultDelay))
			tasks, err := svc.ExportAll(cmd.Context())
			if rerr := report(cmd.OutOrStdout(), tasks); rerr != nil {
				return rerr
			}
			return err
		},
	}
	return cmd
}
