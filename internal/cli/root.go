package cli

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/config"
)

// DefaultOutputDir is used when neither --out nor MEME_EXPORT_DIR is set
const DefaultOutputDir = "."

// options are the flags shared by every command
type options struct {
	source string
	out    string
}

// assetSource returns --source, then MEME_ASSET_SOURCE, then the default host
func (o *options) assetSource() string {
	if o.source != "" {
		return o.source
	}
	if source := os.Getenv(config.EnvAssetSource); source != "" {
		return source
	}
	return config.DefaultAssetSource
}

// outputDir returns --out, then fallback, then MEME_EXPORT_DIR, then the working directory
func (o *options) outputDir(fallback string) string {
	if o.out != "" {
		return o.out
	}
	if fallback != "" {
		return fallback
	}
	if dir := os.Getenv(config.EnvExportDir); dir != "" {
		return dir
	}
	return DefaultOutputDir
}

// NewRootCmd creates the memecli command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "memecli",
		Short: "Caption album images and export them as PNG memes",
		Long: `memecli renders memes from the built-in album catalog without the desktop editor.

Images are read from an asset host (http://...) or a local directory laid out
like one (images/<album>/<n>.png). Settings can come from flags, the
environment or a .env file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.source, "source", "", "Image host URL or asset directory (env "+config.EnvAssetSource+")")
	cmd.PersistentFlags().StringVar(&opts.out, "out", "", "Output directory (env "+config.EnvExportDir+")")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newAlbumsCmd())
	cmd.AddCommand(newImagesCmd())
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))

	return cmd
}
