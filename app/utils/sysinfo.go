package utils

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

// SysInfo is what NeoSys displays.
type SysInfo struct {
	User   string
	System string
	Uptime string
}

// Lines renders the info in display order.
func (s SysInfo) Lines() []string {
	return []string{
		"User: " + s.User,
		"System: " + s.System,
		"Uptime: " + s.Uptime,
	}
}

// CollectSysInfo runs `uname -a` and `uptime` through shell. When either is
// unavailable it falls back to what the Go runtime knows.
func CollectSysInfo(ctx context.Context, shell, username string, started time.Time) SysInfo {
	info := SysInfo{User: username}

	if out, err := RunShell(ctx, shell, "uname -a"); err == nil && strings.TrimSpace(out) != "" {
		info.System = strings.TrimSpace(out)
	} else {
		host, _ := os.Hostname()
		info.System = strings.TrimSpace(fmt.Sprintf("%s %s %s", runtime.GOOS, host, runtime.GOARCH))
	}

	if out, err := RunShell(ctx, shell, "uptime"); err == nil && strings.TrimSpace(out) != "" {
		info.Uptime = strings.TrimSpace(out)
	} else {
		info.Uptime = fmt.Sprintf("NeoLT up %s", time.Since(started).Truncate(time.Second))
	}
	return info
}
