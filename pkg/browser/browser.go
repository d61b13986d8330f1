// Package browser hands URLs to the platform's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Navigator performs the one navigation a countdown commits to.
type Navigator interface {
	Navigate(url string) error
}

// Func adapts a function into a Navigator.
type Func func(url string) error

func (f Func) Navigate(url string) error { return f(url) }

// System returns a Navigator backed by the platform browser.
func System() Navigator { return systemNavigator{} }

type systemNavigator struct{}

// Navigate launches the browser and does not wait for it; navigation is
// fire-and-forget, there is no retry.
func (systemNavigator) Navigate(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("browser: opening URLs is not supported on %s", runtime.GOOS)
	}
	return cmd.Start()
}
