package algorithm

import "time"

// Location 经纬度坐标（度）
type Location struct {
	Latitude  float64
	Longitude float64
}

// Agent 路线捆绑时的配送员快照
// MaxCapacity 为本轮可承接的停靠点数量，仅在内存中消耗，不回写数据库
type Agent struct {
	AgentID     int64
	Name        string
	Location    Location
	MaxCapacity int32
}

// PendingOrder 待配送订单快照（已关联客户坐标）
type PendingOrder struct {
	OrderID         int64
	CustomerName    string
	CustomerAddress string
	TotalAmount     float64
	Location        Location
}

// PlannedStop 规划出的停靠点
type PlannedStop struct {
	OrderID              int64
	CustomerName         string
	CustomerAddress      string
	TotalAmount          float64
	Location             Location
	DistanceFromPrevious float64 // 英里，保留1位小数
	EstimatedArrival     time.Time
}

// PlannedRoute 单个配送员的规划路线
type PlannedRoute struct {
	AgentID           int64
	AgentName         string
	Stops             []PlannedStop
	TotalDistance     float64 // 英里，保留1位小数
	EstimatedDuration int32   // 分钟
}

// BundleResult 一次捆绑运行的完整结果
type BundleResult struct {
	Routes           []PlannedRoute
	AssignedOrders   []int64
	UnassignedOrders []int64
}

// StockSnapshot 某门店某商品的库存快照（已关联门店坐标）
type StockSnapshot struct {
	InventoryID      int64
	StoreID          int64
	StoreName        string
	ProductID        int64
	ProductName      string
	CurrentStock     int32
	ReorderThreshold int32
	MaxCapacity      int32
	Location         Location
}

// TransferAction 跨门店调拨建议
type TransferAction struct {
	ProductID       int64
	ProductName     string
	FromInventoryID int64
	FromStoreID     int64
	FromStore       string
	ToInventoryID   int64
	ToStoreID       int64
	ToStore         string
	TransferAmount  int32
	DistanceMiles   float64
	Priority        string // high / medium
}
