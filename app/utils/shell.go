package utils

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// RunShell runs commandString through shell and returns stdout and stderr
// combined. A non-zero exit still returns whatever the command printed.
func RunShell(ctx context.Context, shell, commandString string) (string, error) {
	if strings.TrimSpace(commandString) == "" {
		return "", nil
	}

	var sysCmd *exec.Cmd
	if isCmdExe(shell) {
		sysCmd = exec.CommandContext(ctx, shell, "/C", commandString)
	} else {
		sysCmd = exec.CommandContext(ctx, shell, "-c", commandString)
	}

	out, err := sysCmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("shell command [%s] failed: %w", strings.Fields(commandString)[0], err)
	}
	return string(out), nil
}

func isCmdExe(shell string) bool {
	name := strings.ToLower(filepath.Base(shell))
	return name == "cmd" || name == "cmd.exe"
}
