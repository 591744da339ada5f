package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/biomark"
	"pkt.systems/biomark/internal/config"
	"pkt.systems/version"
)

const defaultWidth = 80

// maxInputBytes caps how much input is read; anything near it is far over
// the bio limit anyway.
const maxInputBytes = 64 << 10

var errInputTooLarge = errors.New("input too large")

func init() {
	version.SetDefaultModule("pkt.systems/biomark")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	listThemes bool
	outPath    string
	html       bool
	check      bool
	all        bool
	stats      bool
	examples   bool
	category   string
	categories bool
	random     bool
	palette    bool
	showVer    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	defaults := config.Defaults()
	flags := pflag.NewFlagSet("biomark", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/biomark/config.yaml)")
	flags.StringP("theme", "t", defaults.Theme, "Preview theme name")
	flags.IntP("width", "w", defaults.Width, "Preview width override (0 uses terminal width if available)")
	flags.BoolP("boring", "b", defaults.Boring, "Generate plain text without ANSI colors")
	flags.BoolP("gutter", "g", defaults.Gutter, "Number preview lines")
	flags.Bool("strict-colors", defaults.StrictColors, "Reject malformed color codes such as [GG0000]")
	flags.Int("max-lines", defaults.Limits.MaxLines, "Line limit")
	flags.Int("max-chars", defaults.Limits.MaxChars, "Character limit, markup included")
	flags.String("examples-file", defaults.ExamplesFile, "YAML file replacing the built-in examples")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.html, "html", false, "Write the bio as HTML instead of an ANSI preview")
	flags.BoolVarP(&opts.check, "check", "c", false, "Only validate; print the verdict and exit 1 if invalid")
	flags.BoolVar(&opts.all, "all", false, "Report every failing rule instead of the first")
	flags.BoolVarP(&opts.stats, "stats", "s", false, "Print character and line counters to stderr")
	flags.BoolVarP(&opts.examples, "examples", "e", false, "List example bios")
	flags.StringVar(&opts.category, "category", "", "Restrict --examples to a category")
	flags.BoolVar(&opts.categories, "categories", false, "List example categories")
	flags.BoolVarP(&opts.random, "random", "r", false, "Print a random example bio")
	flags.BoolVarP(&opts.palette, "palette", "p", false, "List named colors with their markers")
	flags.BoolVar(&opts.showVer, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: biomark [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, the bio is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVer {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	cfg, err := config.Load(opts.configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	validateOpts := []biomark.ValidateOption{
		biomark.WithLimits(biomark.Limits{MaxLines: cfg.Limits.MaxLines, MaxChars: cfg.Limits.MaxChars}),
		biomark.WithStrictColors(cfg.StrictColors),
	}

	if opts.listThemes {
		printLines(stdout, biomark.AvailableThemes())
		return 0
	}

	theme, ok := biomark.ThemeByName(cfg.Theme)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", cfg.Theme)
		printLines(stderr, biomark.AvailableThemes())
		return 2
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	profile := termenv.Ascii
	if !cfg.Boring {
		profile = termenv.NewOutput(writer).EnvColorProfile()
	}
	renderOpts := []biomark.RenderOption{
		biomark.WithColorProfile(profile),
		biomark.WithGutter(cfg.Gutter),
	}
	width := resolveWidth(cfg.Width, writer)

	if opts.palette {
		printPalette(writer, profile)
		return 0
	}

	if opts.examples || opts.categories || opts.random {
		corpus, err := loadCorpus(cfg.ExamplesFile, validateOpts)
		if err != nil {
			fmt.Fprintf(stderr, "examples: %v\n", err)
			return 1
		}
		switch {
		case opts.categories:
			printLines(writer, corpus.Categories())
		case opts.random:
			fmt.Fprintln(writer, corpus.PickRandom().Raw)
		default:
			if err := printExamples(writer, corpus.ListSuggestions(opts.category), width, theme, renderOpts); err != nil {
				fmt.Fprintf(stderr, "render: %v\n", err)
				return 1
			}
		}
		return 0
	}

	sources, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	job := bioJob{
		out:          writer,
		errOut:       stderr,
		check:        opts.check,
		all:          opts.all,
		stats:        opts.stats,
		html:         opts.html,
		limits:       biomark.Limits{MaxLines: cfg.Limits.MaxLines, MaxChars: cfg.Limits.MaxChars},
		validateOpts: validateOpts,
		renderOpts:   renderOpts,
		profile:      profile,
		theme:        theme,
		width:        width,
	}
	code := 0
	for i, src := range sources {
		prefix := ""
		if len(sources) > 1 {
			if i > 0 {
				fmt.Fprintln(writer)
			}
			fmt.Fprintf(writer, "==> %s <==\n", src.name)
			prefix = src.name + ": "
		}
		ok, err := job.process(src, prefix)
		if err != nil {
			fmt.Fprintf(stderr, "%s%v\n", prefix, err)
		}
		if !ok || err != nil {
			code = 1
		}
	}
	return code
}

// bioJob carries the resolved settings applied to every input.
type bioJob struct {
	out, errOut  io.Writer
	check        bool
	all          bool
	stats        bool
	html         bool
	limits       biomark.Limits
	validateOpts []biomark.ValidateOption
	renderOpts   []biomark.RenderOption
	profile      termenv.Profile
	theme        biomark.Theme
	width        int
}

// process reads, validates and prints one bio. It reports whether the bio
// passed validation; err is set for input and output failures.
func (j bioJob) process(src inputSource, prefix string) (bool, error) {
	reader, closer, err := src.open()
	if err != nil {
		return false, fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	raw, err := readBio(reader)
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}

	var verdicts []biomark.Verdict
	if j.all {
		verdicts = biomark.Diagnose(raw, j.validateOpts...)
	} else if v := biomark.Validate(raw, j.validateOpts...); !v.Valid {
		verdicts = []biomark.Verdict{v}
	}

	if j.stats {
		fmt.Fprint(j.errOut, prefix)
		printStats(j.errOut, biomark.Measure(raw, j.limits), j.theme, j.profile)
	}

	if j.check {
		if len(verdicts) == 0 {
			fmt.Fprintln(j.out, "ok")
			return true, nil
		}
		for _, v := range verdicts {
			fmt.Fprintf(j.out, "%s: %s\n", v.Rule, v.Message)
		}
		return false, nil
	}

	doc := biomark.ParseString(raw)
	if j.html {
		err = biomark.RenderHTML(j.out, doc)
	} else {
		err = biomark.Render(biomark.RenderRequest{
			Writer:   j.out,
			Document: doc,
			Width:    j.width,
			Theme:    j.theme,
			Options:  j.renderOpts,
		})
	}
	if err != nil {
		return false, fmt.Errorf("render: %w", err)
	}
	for _, v := range verdicts {
		fmt.Fprintf(j.errOut, "%sinvalid bio: %s\n", prefix, v.Message)
	}
	return len(verdicts) == 0, nil
}

// readBio reads the whole input, checks it is text, normalizes line endings
// and drops the single trailing newline text files end with.
func readBio(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("%w: more than %d bytes", errInputTooLarge, maxInputBytes)
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if err := biomark.ValidateInput(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func loadCorpus(path string, opts []biomark.ValidateOption) (*biomark.Corpus, error) {
	if path == "" {
		return biomark.DefaultCorpus(), nil
	}
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return biomark.LoadCorpus(f, opts...)
}

func printExamples(w io.Writer, entries []biomark.ExampleEntry, width int, theme biomark.Theme, opts []biomark.RenderOption) error {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s [%s] %s\n", e.ID, e.Category, e.Title)
		if err := biomark.Render(biomark.RenderRequest{
			Writer:   w,
			Document: biomark.ParseString(e.Raw),
			Width:    width,
			Theme:    theme,
			Options:  opts,
		}); err != nil {
			return err
		}
	}
	return nil
}

func printStats(w io.Writer, s biomark.Stats, theme biomark.Theme, profile termenv.Profile) {
	styles := theme.Styles()
	paint := func(text string, warn bool) string {
		color := styles.OK
		if warn {
			color = styles.Warning
		}
		if color == "" || profile == termenv.Ascii {
			return text
		}
		return profile.String(text).Foreground(profile.Color("#" + color)).String()
	}
	chars := paint(fmt.Sprintf("%d/%d", s.Chars, s.Limits.MaxChars), s.CharsWarning())
	lines := paint(fmt.Sprintf("%d/%d lines", s.Lines, s.Limits.MaxLines), s.LinesWarning())
	fmt.Fprintf(w, "%s • %s\n", chars, lines)
}

func printPalette(w io.Writer, profile termenv.Profile) {
	for _, c := range biomark.Palette() {
		swatch := c.Marker()
		if profile != termenv.Ascii {
			swatch = profile.String(swatch).Foreground(profile.Color("#" + c.Hex)).String()
		}
		fmt.Fprintf(w, "%-14s %s\n", c.Name, swatch)
	}
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok {
		return terminalWidth(int(f.Fd()), defaultWidth)
	}
	return 0
}

func terminalWidth(fd int, fallback int) int {
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
