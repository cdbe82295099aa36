package logging

import (
	"io"
	"os"
)

// isStdStream keeps New from closing the process's stdout/stderr.
func isStdStream(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr)
}
