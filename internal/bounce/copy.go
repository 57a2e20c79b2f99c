package bounce

import (
	"fmt"
	"io"
	"os"
)

// CopyError reports a failed copy. Files copied before the failure stay on
// disk; there is no rollback.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// CopyFile duplicates src to dst: full content, permission bits, and
// modification time. Always a real copy, never a symlink or junction, so
// the result is safe on Windows volumes.
func CopyFile(src, dst string) error {
	fail := func(err error) error { return &CopyError{Src: src, Dst: dst, Err: err} }

	info, err := os.Stat(src)
	if err != nil {
		return fail(err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fail(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fail(err)
	}
	return nil
}
