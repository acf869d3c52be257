package admin

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"

	"ircadmin/internal/app/ports"
	"ircadmin/internal/app/version"
)

var startApp = time.Now()

func (a *Admin) handleStatus(sender string) error {
	uptime := time.Since(startApp).Truncate(time.Second)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var cpuPct float64
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		cpuPct = percent[0]
	}

	text := fmt.Sprintf("v%s, up %v, CPU %.2f%%, RAM %v MB, %d admin(s) logged in",
		version.Version, uptime, cpuPct, m.Sys/1024/1024, a.sessions.Count())

	return a.emit(sender, "STATUS", &ports.Action{
		Type:   ports.ActionNotice,
		Target: sender,
		Text:   text,
	})
}
