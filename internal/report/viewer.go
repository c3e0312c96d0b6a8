// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openCommand is swappable in tests.
var openCommand = func(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// OpenViewer opens the rendered chart in the platform image viewer. It does
// not wait for the viewer to exit; a headless machine or missing handler is
// the caller's cue to print a warning, never to fail the run.
func OpenViewer(path string) error {
	cmd := openCommand(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening viewer for %s: %w", path, err)
	}
	// Reap the child in the background so it never turns into a zombie.
	go cmd.Wait()
	return nil
}
