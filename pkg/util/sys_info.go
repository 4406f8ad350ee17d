package util

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SysInfo 系统运行信息摘要
type SysInfo struct {
	OS            string  `json:"os"`            // 操作系统名称
	Arch          string  `json:"arch"`          // CPU 架构
	NumCPU        int     `json:"numCpu"`        // CPU 核心数
	NumGoroutine  int     `json:"numGoroutine"`  // 协程数量
	UptimeSeconds uint64  `json:"uptimeSeconds"` // 主机运行时间（秒）
	MemUsedMB     uint64  `json:"memUsedMb"`     // 已用内存（MB）
	MemTotalMB    uint64  `json:"memTotalMb"`    // 总内存（MB）
	MemPercent    float64 `json:"memPercent"`    // 内存使用率
}

// GetSysInfo collects host runtime information, best effort
// GetSysInfo 采集主机运行信息，尽力而为
func GetSysInfo() *SysInfo {
	info := &SysInfo{
		OS:           GetOSPrettyName(),
		Arch:         runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if uptime, err := host.Uptime(); err == nil {
		info.UptimeSeconds = uptime
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemUsedMB = vm.Used / 1024 / 1024
		info.MemTotalMB = vm.Total / 1024 / 1024
		info.MemPercent = vm.UsedPercent
	}

	return info
}

// GetOSPrettyName gets a more readable and detailed OS name and version
// GetOSPrettyName 获取更具可读性和详细的操作系统名称及版本
func GetOSPrettyName() string {
	if runtime.GOOS == "linux" {
		return getLinuxPrettyName()
	}
	return runtime.GOOS
}

// getLinuxPrettyName reads /etc/os-release to get PRETTY_NAME
// getLinuxPrettyName 读取 /etc/os-release 获取 PRETTY_NAME
func getLinuxPrettyName() string {
	file, err := os.Open("/etc/os-release")
	if err != nil {
		return "Linux"
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			name := strings.TrimPrefix(line, "PRETTY_NAME=")
			name = strings.Trim(name, "\"")
			return name
		}
	}
	return "Linux"
}
