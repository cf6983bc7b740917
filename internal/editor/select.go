package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// panelSize caps how many entries the interactive panel shows at once.
const panelSize = 10

// NewSelector returns the terminal selection panel: an interactive picker
// when stdin and stderr are terminals, otherwise a numbered-line prompt that
// reads an entry number from stdin. fixedWidthFont is the host font
// preference from the configuration; terminal output is already fixed
// width, so only a GUI host implementation would act on it.
func NewSelector(log *slog.Logger, fixedWidthFont bool) Selector {
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd()) {
		return &promptSelector{log: log, fixedWidthFont: fixedWidthFont}
	}
	return NewLineSelector(log, os.Stdin, os.Stderr)
}

type promptSelector struct {
	log            *slog.Logger
	fixedWidthFont bool
}

func (s *promptSelector) Select(ctx context.Context, entries []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return Canceled, err
	}

	s.log.Debug("showing selection panel",
		"entries", len(entries),
		"fixed_width_font", s.fixedWidthFont)

	size := len(entries)
	if size > panelSize {
		size = panelSize
	}

	prompt := promptui.Select{
		Label:    "Insert date/time",
		Items:    entries,
		Size:     size,
		HideHelp: true,
		Stdout:   os.Stderr,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return Canceled, nil
		}
		return Canceled, fmt.Errorf("%w: %v", ErrSelection, err)
	}
	return idx, nil
}

// NewLineSelector returns a non-interactive Selector that prints the
// numbered entries to out and reads an entry number from in. An empty line
// or EOF cancels.
func NewLineSelector(log *slog.Logger, in io.Reader, out io.Writer) Selector {
	return &lineSelector{log: log, in: in, out: out}
}

type lineSelector struct {
	log *slog.Logger
	in  io.Reader
	out io.Writer
}

func (s *lineSelector) Select(ctx context.Context, entries []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return Canceled, err
	}

	for i, entry := range entries {
		fmt.Fprintf(s.out, "%2d) %s\n", i+1, entry)
	}
	fmt.Fprintf(s.out, "Insert date/time [1-%d, empty cancels]: ", len(entries))

	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && line == "" {
		return Canceled, nil
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return Canceled, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(entries) {
		return Canceled, fmt.Errorf("%w: %q is not an entry number", ErrSelection, line)
	}
	return n - 1, nil
}
