package cli

import (
	"fmt"
	"io"
	"os"
)

// UI abstracts user-facing output so commands stay testable.
type UI interface {
	Println(a ...any)
	Printf(format string, a ...any)
}

type stdUI struct {
	out io.Writer
}

// NewStdUI returns a UI backed by stdout.
func NewStdUI() UI {
	return &stdUI{out: os.Stdout}
}

// NewWriterUI returns a UI that writes to w.
func NewWriterUI(w io.Writer) UI {
	return &stdUI{out: w}
}

func (u *stdUI) Println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *stdUI) Printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}
