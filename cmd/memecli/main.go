package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	root := cli.NewRootCmd()

	err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
