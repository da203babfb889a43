//go:build unix

package hooks

import (
	"os/exec"
	"syscall"
)

// killGroup runs cmd in its own process group so cancellation also reaches
// the children a script started.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
