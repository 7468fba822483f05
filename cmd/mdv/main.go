// Command mdv renders markdown files in the terminal, displaying images
// inline on terminals that speak the iTerm2 inline-image protocol and
// degrading to textual placeholders everywhere else.
//
// Usage:
//
//	mdv [flags] file.md [file2.md ...]
//
// Flags:
//
//	-width int          Override detected terminal width in columns
//	-timeout duration   Remote image fetch timeout (default 10s)
//	-max-bytes int      Remote image size cap in bytes (default 16MiB)
//	-concurrency int    Parallel remote image fetches (default 4)
//	-no-images          Always use textual placeholders
//	-resample           Resample scaled images client-side
//	-hold               Keep the viewer open until interrupt (default true)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/fwojciec/mdv"
	"github.com/fwojciec/mdv/fetch"
	"github.com/fwojciec/mdv/goldmark"
	"github.com/fwojciec/mdv/iterm2"
	"github.com/fwojciec/mdv/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdv: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width       = flag.Int("width", 0, "Override detected terminal width in columns")
		timeout     = flag.Duration("timeout", fetch.DefaultTimeout, "Remote image fetch timeout")
		maxBytes    = flag.Int64("max-bytes", fetch.DefaultMaxBytes, "Remote image size cap in bytes")
		concurrency = flag.Int("concurrency", 4, "Parallel remote image fetches")
		noImages    = flag.Bool("no-images", false, "Always use textual placeholders")
		doResample  = flag.Bool("resample", false, "Resample scaled images client-side")
		hold        = flag.Bool("hold", true, "Keep the viewer open until interrupt")
	)
	flag.Parse()

	files, err := expandArgs(flag.Args())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("usage: mdv [flags] <file.md> [file2.md ...]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fd := int(os.Stdout.Fd())
	geo := terminal.CurrentGeometry(fd)
	if *width > 0 {
		geo.Columns = *width
	}
	// Reserve one column so a full-width image never triggers a wrap.
	if geo.Columns > 1 {
		geo.Columns--
	}

	theme := mdv.DefaultTheme()
	muted := mutedStyle(theme)
	renderer := goldmark.New(theme)
	loader := fetch.New(fetch.WithTimeout(*timeout), fetch.WithMaxBytes(*maxBytes))
	encoder := iterm2.New(iterm2.WithResample(*doResample))

	imagesOK := !*noImages && terminal.IsTerminal(fd) && iterm2.Detect()

	for i, file := range files {
		if i > 0 {
			fmt.Println()
		}
		if len(files) > 1 {
			fmt.Println(muted.Render("── " + file + " ──"))
			fmt.Println()
		}
		err := renderFile(ctx, file, renderConfig{
			renderer:    renderer,
			loader:      loader,
			encoder:     encoder,
			geo:         geo,
			imagesOK:    imagesOK,
			concurrency: *concurrency,
			muted:       muted,
		}, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if *hold && terminal.IsTerminal(fd) && ctx.Err() == nil {
		fmt.Println(muted.Render("\nPress Ctrl+C to exit"))
		<-ctx.Done()
	}
	return nil
}

type renderConfig struct {
	renderer    mdv.Renderer
	loader      mdv.Loader
	encoder     mdv.Encoder
	geo         mdv.Geometry
	imagesOK    bool
	concurrency int
	muted       lipgloss.Style
}

func renderFile(ctx context.Context, file string, cfg renderConfig, w io.Writer) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	// Relative image references resolve against the document's directory.
	opts := []mdv.Option{
		mdv.WithBaseDir(filepath.Dir(file)),
		mdv.WithConcurrency(cfg.concurrency),
		mdv.WithFallbackFormat(fallbackFormat(cfg.muted, cfg.geo.Columns)),
	}
	if !cfg.imagesOK {
		opts = append(opts, mdv.WithImagesDisabled())
	}

	p := mdv.New(cfg.renderer, cfg.loader, cfg.encoder, cfg.geo, opts...)
	return p.Run(ctx, string(data), w)
}

// fallbackFormat styles the image placeholder and clamps it to the
// terminal width.
func fallbackFormat(muted lipgloss.Style, columns int) func(alt, ref string) string {
	return func(alt, ref string) string {
		label := alt
		if label == "" {
			label = ref
		}
		text := "[image: " + label + "]"
		if columns > 0 {
			text = runewidth.Truncate(text, columns, "…")
		}
		return muted.Render(text)
	}
}

func mutedStyle(theme mdv.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(theme.Muted))).
		Faint(true)
}

// expandArgs expands arguments containing glob metacharacters with
// doublestar and passes plain paths through untouched, preserving
// argument order.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}
