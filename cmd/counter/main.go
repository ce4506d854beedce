// counter runs the hand-compiled counter-closure program against the linx
// runtime and optionally stores its globals in an image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/linx-lang/linx/image"
	"github.com/linx-lang/linx/manifest"
	"github.com/linx-lang/linx/vm"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	configDir := flag.String("config", ".", "Directory to search for linx.toml")
	imagePath := flag.String("image", "", "Save globals to this image (overrides linx.toml)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: counter [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the counter-closure program on a fresh linx runtime.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  counter                    # Print 13, 14, 35, 15\n")
		fmt.Fprintf(os.Stderr, "  counter -image state.db    # Also save the results global\n")
	}
	flag.Parse()

	m, err := manifest.FindAndLoad(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	commonlog.Configure(logVerbosity(*verbose, m), nil)

	cfg := vm.DefaultConfig()
	if m != nil {
		cfg = m.RuntimeConfig()
		if *imagePath == "" {
			*imagePath = m.ImagePath()
		}
	}

	rt := vm.New(cfg)
	results := runProgram(rt)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Runtime %s printed %d values: %s\n", rt.Name, rt.Stats().Prints, results)
	}

	if *imagePath != "" {
		if err := saveImage(rt, *imagePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// logVerbosity selects debug logging when -v is given, when linx.toml sets
// runtime.debug or when LINX_DEBUG is set.
func logVerbosity(verbose bool, m *manifest.Manifest) int {
	if verbose || os.Getenv("LINX_DEBUG") != "" || (m != nil && m.Runtime.Debug) {
		return 2
	}
	return 0
}

func saveImage(rt *vm.Runtime, path string) error {
	img, err := image.Open(path)
	if err != nil {
		return err
	}
	defer img.Close()

	n, err := img.SaveRuntime(rt)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved %d globals to %s\n", n, path)
	return nil
}
