// Command slidegen writes the indexing decisions slide to a PowerPoint file.
//
// Run without arguments it writes indexes_slide.pptx in the working
// directory and prints "Saved indexes_slide.pptx".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
