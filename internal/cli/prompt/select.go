// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/maa/internal/errors"
)

// Sentinel errors for item selection.
var (
	ErrNoItems            = errors.New("no items to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// Select prints a numbered menu of items and returns the chosen index.
//
// Returns:
//   - ErrNoItems if the list is empty
//   - 0 if only one item exists (auto-selects without prompting)
//   - The selected index based on user input, defaulting to the first
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) Select(title string, n int, label func(i int) string) (int, error) {
	if n == 0 {
		return -1, ErrNoItems
	}
	if n == 1 {
		return 0, nil
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i := range n {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, label(i))
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return -1, ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return -1, errors.Wrap(err, "reading selection")
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return -1, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > n {
		return -1, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
	}

	return selection - 1, nil
}

// Fuzzy opens a full-screen fuzzy finder over n items and returns the
// chosen index. preview may be nil. Aborting returns ErrSelectionCancelled.
func Fuzzy(n int, label func(i int) string, preview func(i int) string) (int, error) {
	if n == 0 {
		return -1, ErrNoItems
	}

	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	var opts []fuzzyfinder.Option
	if preview != nil {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}))
	}

	idx, err := fuzzyfinder.Find(items, label, opts...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, ErrSelectionCancelled
		}
		return -1, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}
