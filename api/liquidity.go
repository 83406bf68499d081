package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/supplychain/algorithm"
	"github.com/quickmart/supplychain/cache"
	"github.com/rs/zerolog/log"
)

// ==================== 库存流动性 ====================

type liquidityItemResponse struct {
	InventoryID      int64   `json:"inventory_id"`
	StoreID          int64   `json:"store_id"`
	StoreName        string  `json:"store_name"`
	ProductID        int64   `json:"product_id"`
	ProductName      string  `json:"product_name"`
	ProductCategory  string  `json:"product_category"`
	CurrentStock     int32   `json:"current_stock"`
	ReorderThreshold int32   `json:"reorder_threshold"`
	MaxCapacity      int32   `json:"max_capacity"`
	LiquidityScore   float64 `json:"liquidity_score"`
	Status           string  `json:"status"`
}

type liquiditySummaryResponse struct {
	Items      []liquidityItemResponse `json:"items"`
	Critical   int                     `json:"critical"`
	Low        int                     `json:"low"`
	Cached     bool                    `json:"cached"`
	ComputedAt time.Time               `json:"computed_at"`
}

type getLiquidityRequest struct {
	StoreID int64 `form:"store_id" binding:"omitempty,min=1"`
}

// getInventoryLiquidity godoc
// @Summary 库存流动性评分
// @Description 为每条库存记录计算流动性档位；结果短暂缓存于 Redis
// @Tags 库存
// @Produce json
// @Param store_id query int false "门店ID，为空时返回全网"
// @Success 200 {object} liquiditySummaryResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/inventory/liquidity [get]
func (server *Server) getInventoryLiquidity(ctx *gin.Context) {
	var req getLiquidityRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// 缓存命中直接返回（缓存只存评分，明细字段重新查询成本低，
	// 因此缓存结果不含库存明细，仅用于看板高频轮询场景）
	if server.liquidityCache != nil {
		if cached, err := server.liquidityCache.Get(ctx, req.StoreID); err != nil {
			log.Warn().Err(err).Msg("liquidity cache read failed")
		} else if cached != nil {
			resp := liquiditySummaryResponse{
				Items:      []liquidityItemResponse{},
				Cached:     true,
				ComputedAt: cached.ComputedAt,
			}
			for _, item := range cached.Items {
				resp.Items = append(resp.Items, liquidityItemResponse{
					InventoryID:    item.InventoryID,
					StoreID:        item.StoreID,
					ProductID:      item.ProductID,
					LiquidityScore: item.Score,
					Status:         item.Status,
				})
				switch item.Status {
				case algorithm.LiquidityCritical:
					resp.Critical++
				case algorithm.LiquidityLow:
					resp.Low++
				}
			}
			ctx.JSON(http.StatusOK, resp)
			return
		}
	}

	items, err := server.loadLiquidityItems(ctx, req.StoreID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	now := time.Now()
	resp := liquiditySummaryResponse{
		Items:      items,
		ComputedAt: now,
	}
	cachedSummary := &cache.CachedLiquiditySummary{
		ComputedAt:  now,
		StoreFilter: req.StoreID,
	}
	for _, item := range items {
		switch item.Status {
		case algorithm.LiquidityCritical:
			resp.Critical++
		case algorithm.LiquidityLow:
			resp.Low++
		}
		cachedSummary.Items = append(cachedSummary.Items, cache.CachedLiquidityItem{
			InventoryID: item.InventoryID,
			StoreID:     item.StoreID,
			ProductID:   item.ProductID,
			Score:       item.LiquidityScore,
			Status:      item.Status,
		})
	}

	if server.liquidityCache != nil {
		if err := server.liquidityCache.Set(ctx, req.StoreID, cachedSummary); err != nil {
			log.Warn().Err(err).Msg("liquidity cache write failed")
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

// loadLiquidityItems 查询库存明细并逐条评分
func (server *Server) loadLiquidityItems(ctx *gin.Context, storeID int64) ([]liquidityItemResponse, error) {
	items := []liquidityItemResponse{}

	appendItem := func(
		inventoryID, invStoreID, productID int64,
		storeName, productName, productCategory string,
		currentStock, reorderThreshold, maxCapacity int32,
	) {
		result := algorithm.LiquidityScore(currentStock, reorderThreshold, maxCapacity)
		items = append(items, liquidityItemResponse{
			InventoryID:      inventoryID,
			StoreID:          invStoreID,
			StoreName:        storeName,
			ProductID:        productID,
			ProductName:      productName,
			ProductCategory:  productCategory,
			CurrentStock:     currentStock,
			ReorderThreshold: reorderThreshold,
			MaxCapacity:      maxCapacity,
			LiquidityScore:   result.Score,
			Status:           result.Status,
		})
	}

	if storeID != 0 {
		rows, err := server.store.ListInventoryDetailByStore(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			appendItem(
				row.Inventory.ID, row.Inventory.StoreID, row.Inventory.ProductID,
				row.StoreName, row.ProductName, row.ProductCategory,
				row.Inventory.CurrentStock, row.Inventory.ReorderThreshold, row.Inventory.MaxCapacity,
			)
		}
		return items, nil
	}

	rows, err := server.store.ListInventoryDetail(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		appendItem(
			row.Inventory.ID, row.Inventory.StoreID, row.Inventory.ProductID,
			row.StoreName, row.ProductName, row.ProductCategory,
			row.Inventory.CurrentStock, row.Inventory.ReorderThreshold, row.Inventory.MaxCapacity,
		)
	}
	return items, nil
}
