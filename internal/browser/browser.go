// Package browser opens files in the system's default browser. Best
// effort: callers treat failure as a warning, never as fatal.
package browser

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open launches the default browser on the given file path.
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	target := "file://" + abs

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	// Release the child so the CLI can exit without waiting on the browser.
	return cmd.Process.Release()
}
