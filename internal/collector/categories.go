package collector

// Category names, as reported in collection errors.
const (
	CategoryIdentity = "identity"
	CategoryOS       = "os"
	CategoryDisplay  = "display"
	CategoryDesktop  = "desktop"
	CategoryCPU      = "cpu"
	CategoryMemory   = "memory"
	CategoryGPU      = "gpu"
	CategoryChassis  = "chassis"
	CategoryBattery  = "battery"
	CategoryStorage  = "storage"
	CategoryUptime   = "uptime"
)

// Categories lists every category in reporting order.
var Categories = []string{
	CategoryIdentity,
	CategoryOS,
	CategoryDisplay,
	CategoryDesktop,
	CategoryCPU,
	CategoryMemory,
	CategoryGPU,
	CategoryChassis,
	CategoryBattery,
	CategoryStorage,
	CategoryUptime,
}
