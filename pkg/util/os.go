package util

import (
	"os"
	"strings"
)

const (
	machineIDEnv  = "MACHINE_ID"
	machineIDPath = "/etc/machine-id"
	unknownHost   = "unknown-machine-id"
)

// GetMachineID identifies the host in exported metrics. MACHINE_ID wins over /etc/machine-id,
// then the hostname is used.
func GetMachineID() string {
	if machineID := strings.TrimSpace(os.Getenv(machineIDEnv)); machineID != "" {
		return machineID
	}
	if data, err := os.ReadFile(machineIDPath); err == nil {
		if machineID := strings.TrimSpace(string(data)); machineID != "" {
			return machineID
		}
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return unknownHost
}
