package db

import (
	"context"
	"fmt"
)

// ==================== 演示数据重置事务 ====================

// SeedFixturesTxParams carries the fixture rows to load. Foreign keys in
// the fixture rows assume serial ids restart from 1 after truncation.
type SeedFixturesTxParams struct {
	Stores    []CreateStoreParams
	Products  []CreateProductParams
	Customers []CreateCustomerParams
	Agents    []CreateDeliveryAgentParams
	Lockers   []CreateSmartLockerParams
	Inventory []CreateInventoryParams
	Orders    []CreateOrderParams
	Items     []CreateOrderItemParams
}

// SeedFixturesTxResult reports how many rows each table received
type SeedFixturesTxResult struct {
	Stores    int `json:"stores"`
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Agents    int `json:"agents"`
	Lockers   int `json:"lockers"`
	Inventory int `json:"inventory"`
	Orders    int `json:"orders"`
	Items     int `json:"order_items"`
}

// SeedFixturesTx resets the database to a known demo state in a single
// transaction:
// 1. Truncate every table and restart identities
// 2. Reload fixture rows in dependency order
func (store *SQLStore) SeedFixturesTx(ctx context.Context, arg SeedFixturesTxParams) (SeedFixturesTxResult, error) {
	var result SeedFixturesTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		// 1. 清空全部业务表
		if err := q.TruncateAll(ctx); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}

		// 2. 按依赖顺序重新灌入数据
		for _, p := range arg.Stores {
			if _, err := q.CreateStore(ctx, p); err != nil {
				return fmt.Errorf("seed store: %w", err)
			}
			result.Stores++
		}
		for _, p := range arg.Products {
			if _, err := q.CreateProduct(ctx, p); err != nil {
				return fmt.Errorf("seed product: %w", err)
			}
			result.Products++
		}
		for _, p := range arg.Customers {
			if _, err := q.CreateCustomer(ctx, p); err != nil {
				return fmt.Errorf("seed customer: %w", err)
			}
			result.Customers++
		}
		for _, p := range arg.Agents {
			if _, err := q.CreateDeliveryAgent(ctx, p); err != nil {
				return fmt.Errorf("seed agent: %w", err)
			}
			result.Agents++
		}
		for _, p := range arg.Lockers {
			if _, err := q.CreateSmartLocker(ctx, p); err != nil {
				return fmt.Errorf("seed locker: %w", err)
			}
			result.Lockers++
		}
		for _, p := range arg.Inventory {
			if _, err := q.CreateInventory(ctx, p); err != nil {
				return fmt.Errorf("seed inventory: %w", err)
			}
			result.Inventory++
		}
		for _, p := range arg.Orders {
			if _, err := q.CreateOrder(ctx, p); err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
			result.Orders++
		}
		for _, p := range arg.Items {
			if _, err := q.CreateOrderItem(ctx, p); err != nil {
				return fmt.Errorf("seed order item: %w", err)
			}
			result.Items++
		}

		return nil
	})

	return result, err
}
