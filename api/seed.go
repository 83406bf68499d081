package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/util"
	"github.com/rs/zerolog/log"
)

// ==================== 演示数据 ====================

var fixtureStores = []db.CreateStoreParams{
	{Name: "QuickMart Supercenter - Downtown", Address: "123 Main St, Dallas, TX 75201", Latitude: 32.7767, Longitude: -96.7970, Capacity: 2000},
	{Name: "QuickMart Neighborhood Market - Uptown", Address: "456 Oak Ave, Dallas, TX 75204", Latitude: 32.7877, Longitude: -96.8089, Capacity: 1500},
	{Name: "QuickMart Supercenter - North Dallas", Address: "789 Elm St, Dallas, TX 75230", Latitude: 32.8998, Longitude: -96.7587, Capacity: 2500},
	{Name: "QuickMart Express - East Dallas", Address: "321 Pine Rd, Dallas, TX 75218", Latitude: 32.7668, Longitude: -96.7156, Capacity: 1000},
	{Name: "QuickMart Supercenter - West Dallas", Address: "654 Cedar Blvd, Dallas, TX 75212", Latitude: 32.7668, Longitude: -96.8667, Capacity: 2200},
}

var fixtureProducts = []db.CreateProductParams{
	{Name: "Bananas (1 lb)", Category: "Fresh Produce", Price: 0.68, Weight: 1.0},
	{Name: "Milk (1 gallon)", Category: "Dairy", Price: 3.48, Weight: 8.6},
	{Name: "Bread (White Loaf)", Category: "Bakery", Price: 1.28, Weight: 1.5},
	{Name: "Eggs (12 count)", Category: "Dairy", Price: 2.48, Weight: 1.5},
	{Name: "Chicken Breast (1 lb)", Category: "Meat", Price: 4.98, Weight: 1.0},
	{Name: "Rice (5 lb bag)", Category: "Pantry", Price: 3.98, Weight: 5.0},
	{Name: "Apples (3 lb bag)", Category: "Fresh Produce", Price: 2.98, Weight: 3.0},
	{Name: "Ground Beef (1 lb)", Category: "Meat", Price: 5.48, Weight: 1.0},
	{Name: "Pasta (1 lb box)", Category: "Pantry", Price: 1.48, Weight: 1.0},
	{Name: "Yogurt (32 oz)", Category: "Dairy", Price: 4.98, Weight: 2.0},
	{Name: "Tomatoes (1 lb)", Category: "Fresh Produce", Price: 1.98, Weight: 1.0},
	{Name: "Cheese Slices (8 oz)", Category: "Dairy", Price: 3.98, Weight: 0.5},
	{Name: "Cereal (18 oz box)", Category: "Breakfast", Price: 4.48, Weight: 1.2},
	{Name: "Orange Juice (64 oz)", Category: "Beverages", Price: 3.98, Weight: 4.0},
	{Name: "Frozen Pizza", Category: "Frozen Foods", Price: 2.98, Weight: 1.5},
}

var fixtureCustomers = []db.CreateCustomerParams{
	{Name: "John Smith", Email: "john.smith@email.com", Address: "100 Commerce St, Dallas, TX 75202", Latitude: 32.7758, Longitude: -96.8085},
	{Name: "Sarah Johnson", Email: "sarah.j@email.com", Address: "200 Victory Ave, Dallas, TX 75219", Latitude: 32.7903, Longitude: -96.8103},
	{Name: "Mike Davis", Email: "mike.davis@email.com", Address: "300 Ross Ave, Dallas, TX 75201", Latitude: 32.7813, Longitude: -96.7969},
	{Name: "Emily Wilson", Email: "emily.w@email.com", Address: "400 Bryan St, Dallas, TX 75201", Latitude: 32.7767, Longitude: -96.7836},
	{Name: "David Brown", Email: "david.brown@email.com", Address: "500 Main St, Dallas, TX 75202", Latitude: 32.7767, Longitude: -96.7970},
	{Name: "Lisa Garcia", Email: "lisa.garcia@email.com", Address: "600 Elm St, Dallas, TX 75202", Latitude: 32.7767, Longitude: -96.7836},
	{Name: "Robert Miller", Email: "robert.m@email.com", Address: "700 Commerce St, Dallas, TX 75202", Latitude: 32.7758, Longitude: -96.8085},
	{Name: "Jennifer Taylor", Email: "jennifer.t@email.com", Address: "800 Main St, Dallas, TX 75202", Latitude: 32.7767, Longitude: -96.7970},
}

var fixtureAgents = []db.CreateDeliveryAgentParams{
	{Name: "Agent Alpha", Phone: "+15550101", CurrentLatitude: 32.7767, CurrentLongitude: -96.7970, IsAvailable: true, MaxCapacity: 25},
	{Name: "Agent Beta", Phone: "+15550102", CurrentLatitude: 32.7877, CurrentLongitude: -96.8089, IsAvailable: true, MaxCapacity: 20},
	{Name: "Agent Gamma", Phone: "+15550103", CurrentLatitude: 32.8998, CurrentLongitude: -96.7587, IsAvailable: true, MaxCapacity: 30},
	{Name: "Agent Delta", Phone: "+15550104", CurrentLatitude: 32.7668, CurrentLongitude: -96.7156, IsAvailable: false, MaxCapacity: 25},
	{Name: "Agent Echo", Phone: "+15550105", CurrentLatitude: 32.7668, CurrentLongitude: -96.8667, IsAvailable: true, MaxCapacity: 20},
}

var fixtureLockers = []db.CreateSmartLockerParams{
	{LocationName: "Downtown Transit Center", Address: "1401 Pacific Ave, Dallas, TX 75201", Latitude: 32.7767, Longitude: -96.8085, TotalCompartments: 60, AvailableCompartments: 45},
	{LocationName: "Uptown Shopping Plaza", Address: "2500 McKinney Ave, Dallas, TX 75201", Latitude: 32.7903, Longitude: -96.8103, TotalCompartments: 40, AvailableCompartments: 32},
	{LocationName: "North Dallas Mall", Address: "12000 North Central Expy, Dallas, TX 75243", Latitude: 32.8998, Longitude: -96.7587, TotalCompartments: 80, AvailableCompartments: 65},
	{LocationName: "East Dallas Community Center", Address: "9009 Garland Rd, Dallas, TX 75218", Latitude: 32.7668, Longitude: -96.7156, TotalCompartments: 50, AvailableCompartments: 38},
	{LocationName: "West Dallas Hub", Address: "1500 Singleton Blvd, Dallas, TX 75212", Latitude: 32.7668, Longitude: -96.8667, TotalCompartments: 45, AvailableCompartments: 40},
}

// buildSeedParams 组装演示数据：门店、商品、客户、骑手、储物柜为固定数据，
// 库存和订单随机生成。外键依赖清空后自增ID从1重新开始。
func buildSeedParams() db.SeedFixturesTxParams {
	params := db.SeedFixturesTxParams{
		Stores:    fixtureStores,
		Products:  fixtureProducts,
		Customers: make([]db.CreateCustomerParams, 0, len(fixtureCustomers)),
		Agents:    fixtureAgents,
		Lockers:   fixtureLockers,
	}

	for _, c := range fixtureCustomers {
		c.Phone = util.RandomPhone()
		params.Customers = append(params.Customers, c)
	}

	// 每个门店-商品组合一条库存记录
	for storeIdx, store := range fixtureStores {
		maxCapacity := int32(100)
		if store.Capacity > 2000 {
			maxCapacity = 150
		} else if store.Capacity > 1500 {
			maxCapacity = 120
		}
		for productIdx, product := range fixtureProducts {
			threshold := int32(12)
			switch product.Category {
			case "Fresh Produce":
				threshold = 15
			case "Dairy":
				threshold = 20
			case "Meat":
				threshold = 10
			}
			params.Inventory = append(params.Inventory, db.CreateInventoryParams{
				StoreID:          int64(storeIdx + 1),
				ProductID:        int64(productIdx + 1),
				CurrentStock:     int32(util.RandomInt(20, 100)),
				ReorderThreshold: threshold,
				MaxCapacity:      maxCapacity,
			})
		}
	}

	// 近30天的随机订单，每单1-3个商品
	statuses := []string{"pending", "processing", "delivered", "cancelled"}
	now := time.Now()
	for i := 0; i < 50; i++ {
		orderID := int64(i + 1)
		params.Orders = append(params.Orders, db.CreateOrderParams{
			CustomerID:  util.RandomInt(1, int64(len(fixtureCustomers))),
			StoreID:     util.RandomInt(1, int64(len(fixtureStores))),
			TotalAmount: util.RandomFloat(10, 60),
			Status:      statuses[util.RandomInt(0, int64(len(statuses)-1))],
			OrderDate:   now.Add(-time.Duration(util.RandomInt(0, 30*24)) * time.Hour),
		})

		itemCount := util.RandomInt(1, 3)
		for j := int64(0); j < itemCount; j++ {
			productIdx := util.RandomInt(0, int64(len(fixtureProducts)-1))
			params.Items = append(params.Items, db.CreateOrderItemParams{
				OrderID:   orderID,
				ProductID: productIdx + 1,
				Quantity:  int32(util.RandomInt(1, 5)),
				UnitPrice: fixtureProducts[productIdx].Price,
			})
		}
	}

	return params
}

// seedFixtures godoc
// @Summary 重置演示数据
// @Description 清空全部业务表并在单个事务内重新灌入达拉斯演示数据
// @Tags 演示数据
// @Produce json
// @Success 200 {object} db.SeedFixturesTxResult "各表写入行数"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/fixtures/seed [post]
func (server *Server) seedFixtures(ctx *gin.Context) {
	result, err := server.store.SeedFixturesTx(ctx, buildSeedParams())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 数据全部重建，流动性缓存整体作废
	if server.liquidityCache != nil {
		storeIDs := make([]int64, 0, len(fixtureStores))
		for i := range fixtureStores {
			storeIDs = append(storeIDs, int64(i+1))
		}
		if err := server.liquidityCache.Invalidate(ctx, storeIDs...); err != nil {
			log.Warn().Err(err).Msg("liquidity cache invalidation failed")
		}
	}

	ctx.JSON(http.StatusOK, result)
}
