package render

import (
	"fmt"
	"os/exec"
	"runtime"
)

// viewerCommand returns the command that opens path in the platform's
// default image viewer.
func viewerCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Show hands the image at path to the OS viewer and returns without waiting
// for it to close.
func Show(path string) error {
	cmd := viewerCommand(runtime.GOOS, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("render: open viewer %s: %w", cmd.Path, err)
	}
	return cmd.Process.Release()
}
