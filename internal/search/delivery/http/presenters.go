package http

import "inventory-hub/internal/search"

type inventoryHit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	ItemCount int    `json:"item_count"`
}

type itemHit struct {
	ID          string `json:"id"`
	InventoryID string `json:"inventory_id"`
	CustomID    string `json:"custom_id"`
}

type searchResp struct {
	Inventories []inventoryHit `json:"inventories"`
	Items       []itemHit      `json:"items"`
}

func newSearchResp(out search.Output) searchResp {
	resp := searchResp{
		Inventories: make([]inventoryHit, 0, len(out.Inventories)),
		Items:       make([]itemHit, 0, len(out.Items)),
	}
	for _, s := range out.Inventories {
		resp.Inventories = append(resp.Inventories, inventoryHit{
			ID:        s.Inventory.ID,
			Title:     s.Inventory.Title,
			Category:  s.Inventory.Category,
			ItemCount: s.ItemCount,
		})
	}
	for _, it := range out.Items {
		resp.Items = append(resp.Items, itemHit{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			CustomID:    it.CustomID,
		})
	}
	return resp
}
