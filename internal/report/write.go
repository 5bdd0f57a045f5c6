package report

import (
	"fmt"
	"io"
	"os"
)

// Write sends content to path, or to stdout when path is empty. Writing to a
// file prints a short note to errW so the destination stays visible even in
// piped invocations.
func Write(content, path string, isJSON bool, stdout, errW io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, content)
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	label := "report"
	if isJSON {
		label = "JSON report"
	}
	fmt.Fprintf(errW, "Wrote %s to %s\n", label, path)
	return nil
}
