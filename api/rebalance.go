package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/supplychain/algorithm"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/rs/zerolog/log"
)

// ==================== 库存调拨 ====================

type rebalanceRequest struct {
	// Apply 为 true 时在事务内实际执行调拨，否则只返回建议
	Apply bool `json:"apply"`
}

type transferActionResponse struct {
	ProductID      int64   `json:"product_id"`
	ProductName    string  `json:"product_name"`
	FromStoreID    int64   `json:"from_store_id"`
	FromStore      string  `json:"from_store"`
	ToStoreID      int64   `json:"to_store_id"`
	ToStore        string  `json:"to_store"`
	TransferAmount int32   `json:"transfer_amount"`
	DistanceMiles  float64 `json:"distance_miles"`
	Priority       string  `json:"priority"`
}

type rebalanceResponse struct {
	Transfers []transferActionResponse `json:"transfers"`
	Applied   int                      `json:"applied"`
	Skipped   int32                    `json:"skipped"`
	DryRun    bool                     `json:"dry_run"`
}

// rebalanceInventory godoc
// @Summary 库存调拨规划
// @Description 为缺货门店匹配50英里内的盈余门店；apply=true 时在单个事务内落库
// @Tags 库存
// @Accept json
// @Produce json
// @Param request body rebalanceRequest false "调拨选项"
// @Success 200 {object} rebalanceResponse
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/inventory/rebalance [post]
func (server *Server) rebalanceInventory(ctx *gin.Context) {
	var req rebalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.store.ListInventoryDetail(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	snapshot := make([]algorithm.StockSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, algorithm.StockSnapshot{
			InventoryID:      row.Inventory.ID,
			StoreID:          row.Inventory.StoreID,
			StoreName:        row.StoreName,
			ProductID:        row.Inventory.ProductID,
			ProductName:      row.ProductName,
			CurrentStock:     row.Inventory.CurrentStock,
			ReorderThreshold: row.Inventory.ReorderThreshold,
			MaxCapacity:      row.Inventory.MaxCapacity,
			Location: algorithm.Location{
				Latitude:  row.StoreLatitude,
				Longitude: row.StoreLongitude,
			},
		})
	}

	actions := algorithm.PlanRebalance(snapshot)

	resp := rebalanceResponse{
		Transfers: make([]transferActionResponse, 0, len(actions)),
		DryRun:    !req.Apply,
	}
	for _, a := range actions {
		resp.Transfers = append(resp.Transfers, transferActionResponse{
			ProductID:      a.ProductID,
			ProductName:    a.ProductName,
			FromStoreID:    a.FromStoreID,
			FromStore:      a.FromStore,
			ToStoreID:      a.ToStoreID,
			ToStore:        a.ToStore,
			TransferAmount: a.TransferAmount,
			DistanceMiles:  a.DistanceMiles,
			Priority:       a.Priority,
		})
	}

	if !req.Apply || len(actions) == 0 {
		ctx.JSON(http.StatusOK, resp)
		return
	}

	transfers := make([]db.TransferParams, 0, len(actions))
	storeIDs := make([]int64, 0, len(actions)*2)
	for _, a := range actions {
		transfers = append(transfers, db.TransferParams{
			FromInventoryID: a.FromInventoryID,
			ToInventoryID:   a.ToInventoryID,
			Amount:          a.TransferAmount,
		})
		storeIDs = append(storeIDs, a.FromStoreID, a.ToStoreID)
	}

	result, err := server.store.ApplyRebalanceTx(ctx, db.ApplyRebalanceTxParams{
		Transfers: transfers,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 库存已变动，作废受影响门店的流动性缓存
	if server.liquidityCache != nil {
		if err := server.liquidityCache.Invalidate(ctx, storeIDs...); err != nil {
			log.Warn().Err(err).Msg("liquidity cache invalidation failed")
		}
	}

	resp.Applied = len(result.Applied)
	resp.Skipped = result.Skipped
	ctx.JSON(http.StatusOK, resp)
}
