package http

import (
	"inventory-hub/internal/item"
	"inventory-hub/pkg/response"
)

// valuesDTO carries the typed custom field values on the wire. Each slice
// holds up to three entries matching the field slots; null keeps a slot
// unset.
type valuesDTO struct {
	Strings []*string  `json:"strings"`
	Texts   []*string  `json:"texts"`
	Numbers []*float64 `json:"numbers"`
	Links   []*string  `json:"links"`
	Bools   []*bool    `json:"bools"`
}

func (v valuesDTO) toValues() item.FieldValues {
	var out item.FieldValues
	copySlots(out.Strings[:], v.Strings)
	copySlots(out.Texts[:], v.Texts)
	copySlots(out.Numbers[:], v.Numbers)
	copySlots(out.Links[:], v.Links)
	copySlots(out.Bools[:], v.Bools)
	return out
}

func copySlots[T any](dst []T, src []T) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] = src[i]
	}
}

func newValuesDTO(v item.FieldValues) valuesDTO {
	return valuesDTO{
		Strings: v.Strings[:],
		Texts:   v.Texts[:],
		Numbers: v.Numbers[:],
		Links:   v.Links[:],
		Bools:   v.Bools[:],
	}
}

// --- Requests ---

type createReq struct {
	CustomID string    `json:"custom_id"`
	Values   valuesDTO `json:"values"`
}

func (r createReq) toInput(inventoryID string) item.CreateInput {
	return item.CreateInput{
		InventoryID: inventoryID,
		CustomID:    r.CustomID,
		Values:      r.Values.toValues(),
	}
}

// updateReq carries the caller-observed version; omitting it skips the
// optimistic-lock check. A null custom_id keeps the stored one.
type updateReq struct {
	CustomID *string   `json:"custom_id"`
	Values   valuesDTO `json:"values"`
	Version  *int      `json:"version"`
}

func (r updateReq) toInput(id string) item.UpdateInput {
	return item.UpdateInput{
		ID:       id,
		CustomID: r.CustomID,
		Values:   r.Values.toValues(),
		Version:  r.Version,
	}
}

type deleteBulkReq struct {
	IDs []string `json:"ids" binding:"required"`
}

// --- Responses ---

type itemResp struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	CustomID    string    `json:"custom_id"`
	CreatorID   string    `json:"creator_id"`
	Values      valuesDTO `json:"values"`
	Version     int       `json:"version"`
	LikeCount   int       `json:"like_count"`
	LikedByMe   bool      `json:"liked_by_me"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

func newItemResp(d item.Detail) itemResp {
	return itemResp{
		ID:          d.Item.ID,
		InventoryID: d.Item.InventoryID,
		CustomID:    d.Item.CustomID,
		CreatorID:   d.Item.CreatorID,
		Values:      newValuesDTO(d.Item.Values),
		Version:     d.Item.Version,
		LikeCount:   d.LikeCount,
		LikedByMe:   d.LikedByMe,
		CreatedAt:   d.Item.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:   d.Item.UpdatedAt.Format(response.DateTimeFormat),
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func newListResp(out item.ListOutput) listResp {
	resp := listResp{Items: make([]itemResp, 0, len(out.Items)), Total: out.Total}
	for _, d := range out.Items {
		resp.Items = append(resp.Items, newItemResp(d))
	}
	return resp
}
