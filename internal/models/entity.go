package models

// 实体优先级
const (
	PriorityRoutine = "routine"
	PriorityUrgent  = "urgent"
)

// Entity 世界实体（节点、传感器设备等），内存实体仓库的基本单元
type Entity struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Geo      *GeoComponent    `json:"geo,omitempty"`
	Device   *DeviceComponent `json:"device,omitempty"`
	Priority string           `json:"priority,omitempty"`
}

// GeoComponent 地理位置组件
type GeoComponent struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Altitude  float64 `json:"altitude"`
}

// DeviceComponent 设备组件（节点信息或串口设备二选一）
type DeviceComponent struct {
	UniqueHardwareID string            `json:"unique_hardware_id"`
	Labels           map[string]string `json:"labels,omitempty"`
	Node             *NodeDevice       `json:"node,omitempty"`
	Serial           *SerialDevice     `json:"serial,omitempty"`
}

// NodeDevice 计算节点设备
type NodeDevice struct {
	Hostname string `json:"hostname"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	NumCPU   int    `json:"num_cpu"`
}

// SerialDevice 串口设备（如佩戴端采集节点）
type SerialDevice struct {
	Path     string `json:"path"`
	BaudRate int    `json:"baud_rate"`
}

// TaskStatus 任务状态
const (
	TaskStatusRunning = "running"
)
