package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ordset/ordset/internal/bst"
)

// errInputClosed signals that the input stream ended. It is handled
// inside Run as a clean exit, like choosing Quit.
var errInputClosed = errors.New("input closed")

const menu = `
[1] Insert Key
[2] Delete Key
[3] Find a Key
[4] Tree Height
[5] Keys in Ascending Order
[6] Print Tree
[0] Quit
`

// Shell drives one bst.Tree through a line-oriented menu. All input
// comes from the injected reader and all output goes to the injected
// writer, so the loop is fully scriptable in tests.
type Shell struct {
	tree   *bst.Tree
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a shell around the given tree. A nil logger falls back
// to slog.Default.
func New(tree *bst.Tree, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		tree:   tree,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the user chooses Quit or the input stream ends.
// Malformed input is reported and the menu is shown again; it never
// terminates the loop.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		fmt.Fprint(s.out, "> ")

		choice, err := s.readLine()
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.out, "bye")
			return nil
		case "1":
			err = s.insert()
		case "2":
			err = s.delete()
		case "3":
			err = s.find()
		case "4":
			fmt.Fprintf(s.out, "current height of the tree is: %d\n", s.tree.Height())
		case "5":
			s.listKeys()
		case "6":
			s.printTree()
		default:
			fmt.Fprintf(s.out, "unknown choice %q\n", choice)
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) insert() error {
	key, ok, err := s.promptKey("enter the key to insert: ")
	if !ok || err != nil {
		return err
	}

	added := s.tree.Insert(key)
	s.logger.Debug("insert", "key", key, "added", added)
	if added {
		fmt.Fprintf(s.out, "inserted %d\n", key)
	} else {
		fmt.Fprintf(s.out, "key %d is already in the tree\n", key)
	}
	return nil
}

func (s *Shell) delete() error {
	if s.tree.IsEmpty() {
		fmt.Fprintln(s.out, "tree is already empty")
		return nil
	}

	key, ok, err := s.promptKey("enter the key to delete: ")
	if !ok || err != nil {
		return err
	}

	removed := s.tree.Delete(key)
	s.logger.Debug("delete", "key", key, "removed", removed)
	if removed {
		fmt.Fprintf(s.out, "deleted %d\n", key)
	} else {
		fmt.Fprintf(s.out, "key %d is not in the tree\n", key)
	}
	return nil
}

func (s *Shell) find() error {
	key, ok, err := s.promptKey("enter the key to find: ")
	if !ok || err != nil {
		return err
	}

	if s.tree.Contains(key) {
		fmt.Fprintf(s.out, "key %d is in the tree.\n", key)
	} else {
		fmt.Fprintf(s.out, "key %d is not in the tree.\n", key)
	}
	return nil
}

func (s *Shell) listKeys() {
	keys := s.tree.Keys()
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.FormatInt(key, 10)
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
}

func (s *Shell) printTree() {
	if s.tree.IsEmpty() {
		fmt.Fprintln(s.out, "tree is empty")
		return
	}
	s.tree.RenderSideways(s.out)
}

// promptKey reads one integer key. A malformed key is reported on the
// output writer and ok is false; only a closed input stream or a read
// failure produces an error.
func (s *Shell) promptKey(prompt string) (key int64, ok bool, err error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.readLine()
	if err != nil {
		return 0, false, err
	}

	key, perr := strconv.ParseInt(line, 10, 64)
	if perr != nil {
		fmt.Fprintf(s.out, "invalid key %q\n", line)
		return 0, false, nil
	}
	return key, true, nil
}

func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
