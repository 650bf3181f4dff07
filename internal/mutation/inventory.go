package mutation

import (
	"context"
	"fmt"
	"io"

	"inventory-client/internal/domain"
	"inventory-client/internal/models"
	"inventory-client/internal/notify"

	"go.uber.org/zap"
)

// UpdateStock asks the server to add, subtract or set stock. The item is
// replaced with the server's record, never with a locally computed one.
func (o *Orchestrator) UpdateStock(ctx context.Context, id string, quantity int, operation domain.StockOperation) (models.InventoryItem, error) {
	const op = "updateStock"

	if verr := o.validator.ID("id", id); verr != nil {
		return models.InventoryItem{}, o.fail(ctx, op, "Invalid stock update", verr)
	}
	update := models.StockUpdate{Quantity: quantity, Operation: operation}
	if verr := o.validator.Struct(update); verr != nil {
		return models.InventoryItem{}, o.fail(ctx, op, "Invalid stock update", verr)
	}

	resp := o.remote.UpdateStock(ctx, id, update)
	if !resp.Success {
		return models.InventoryItem{}, o.fail(ctx, op, "Failed to update stock", resp.Err())
	}

	item := resp.Data
	if item.ID == "" {
		item.ID = id
	}
	if _, ok := o.state.ReplaceItem(item); !ok {
		if _, err := o.refresher.RefreshInventory(ctx); err != nil {
			o.logger.Warn("Inventory reload after stock update failed", zap.Error(err))
		}
	}
	o.state.SetProductStock(id, item.CurrentStock)

	// Stock changes can raise or clear alerts on the server.
	if _, err := o.refresher.RefreshAlerts(ctx); err != nil {
		o.logger.Warn("Alert reload after stock update failed", zap.Error(err))
	}

	o.logger.Info("Stock updated",
		zap.String("item_id", id),
		zap.String("operation", string(operation)),
		zap.Int("quantity", quantity),
		zap.Int("current_stock", item.CurrentStock),
	)
	o.sink.Notify(ctx, notify.Success(op, "Stock updated", fmt.Sprintf("%s stock is now %d", item.Name, item.CurrentStock)))
	return item, nil
}

// DismissAlert removes an alert once the server confirms.
func (o *Orchestrator) DismissAlert(ctx context.Context, id string) error {
	const op = "dismissAlert"

	if verr := o.validator.ID("id", id); verr != nil {
		return o.fail(ctx, op, "Invalid alert", verr)
	}

	resp := o.remote.DismissAlert(ctx, id)
	if !resp.Success {
		return o.fail(ctx, op, "Failed to dismiss alert", resp.Err())
	}

	o.state.RemoveAlert(id)
	o.sink.Notify(ctx, notify.Success(op, "Alert dismissed", "Alert has been dismissed"))
	return nil
}

// ImportInventory streams a bulk stock file, then reloads the overview and alerts.
func (o *Orchestrator) ImportInventory(ctx context.Context, filename string, r io.Reader) (string, error) {
	const op = "importInventory"

	if verr := o.validator.Import(filename, r); verr != nil {
		return "", o.fail(ctx, op, "Import failed", verr)
	}

	resp := o.remote.ImportInventory(ctx, filename, r)
	if !resp.Success {
		return "", o.fail(ctx, op, "Import failed", resp.Err())
	}

	if _, err := o.refresher.RefreshInventory(ctx); err != nil {
		o.logger.Warn("Inventory reload after import failed", zap.Error(err))
	}
	if _, err := o.refresher.RefreshAlerts(ctx); err != nil {
		o.logger.Warn("Alert reload after import failed", zap.Error(err))
	}

	message := confirmation(resp, "Inventory data imported successfully")
	o.logger.Info("Inventory imported", zap.String("filename", filename), zap.String("message", message))
	o.sink.Notify(ctx, notify.Success(op, "Import successful", message))
	return message, nil
}

// ExportInventory downloads the inventory report.
func (o *Orchestrator) ExportInventory(ctx context.Context) (Artifact, error) {
	return o.export(ctx, "exportInventory", "inventory-report", "Inventory report exported successfully", o.remote.ExportInventory)
}
