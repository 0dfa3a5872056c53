package http

import (
	"inventory-hub/internal/inventory"
	"inventory-hub/pkg/customid"
	"inventory-hub/pkg/response"
)

// --- Requests ---

type createReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"is_public"`
}

func (r createReq) toInput() inventory.CreateInput {
	return inventory.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		IsPublic:    r.IsPublic,
	}
}

// updateReq carries the caller-observed version; omitting it skips the
// optimistic-lock check.
type updateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"is_public"`
	Version     *int   `json:"version"`
}

func (r updateReq) toInput(id string) inventory.UpdateInput {
	return inventory.UpdateInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		IsPublic:    r.IsPublic,
		Version:     r.Version,
	}
}

type formatReq struct {
	Elements []formatElem `json:"elements" binding:"required"`
}

type formatElem struct {
	Type   string `json:"type" binding:"required"`
	Value  string `json:"value"`
	Format string `json:"format"`
}

func (r formatReq) toElements() []customid.Element {
	elements := make([]customid.Element, 0, len(r.Elements))
	for _, e := range r.Elements {
		elements = append(elements, customid.Element{
			Kind:   customid.ElementKind(e.Type),
			Value:  e.Value,
			Format: e.Format,
		})
	}
	return elements
}

type fieldsReq struct {
	Fields []fieldElem `json:"fields" binding:"required"`
}

type fieldElem struct {
	Kind           string `json:"kind" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	VisibleInTable bool   `json:"visible_in_table"`
}

func (r fieldsReq) toInputs() []inventory.FieldInput {
	inputs := make([]inventory.FieldInput, 0, len(r.Fields))
	for _, f := range r.Fields {
		inputs = append(inputs, inventory.FieldInput{
			Kind:           inventory.FieldKind(f.Kind),
			Title:          f.Title,
			Description:    f.Description,
			VisibleInTable: f.VisibleInTable,
		})
	}
	return inputs
}

type grantReq struct {
	UserID string `json:"user_id" binding:"required"`
}

type tagReq struct {
	Name string `json:"name" binding:"required"`
}

// --- Responses ---

type creatorResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type inventoryResp struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Category       string       `json:"category,omitempty"`
	IsPublic       bool         `json:"is_public"`
	Creator        creatorResp  `json:"creator"`
	CustomIDFormat []formatElem `json:"custom_id_format"`
	Version        int          `json:"version"`
	ItemCount      int          `json:"item_count"`
	CreatedAt      string       `json:"created_at"`
	UpdatedAt      string       `json:"updated_at"`
}

func newInventoryResp(s inventory.Summary) inventoryResp {
	elements := make([]formatElem, 0, len(s.Inventory.CustomIDFormat))
	for _, e := range s.Inventory.CustomIDFormat {
		elements = append(elements, formatElem{
			Type:   string(e.Kind),
			Value:  e.Value,
			Format: e.Format,
		})
	}
	return inventoryResp{
		ID:             s.Inventory.ID,
		Title:          s.Inventory.Title,
		Description:    s.Inventory.Description,
		Category:       s.Inventory.Category,
		IsPublic:       s.Inventory.IsPublic,
		Creator:        creatorResp(s.Creator),
		CustomIDFormat: elements,
		Version:        s.Inventory.Version,
		ItemCount:      s.ItemCount,
		CreatedAt:      s.Inventory.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:      s.Inventory.UpdatedAt.Format(response.DateTimeFormat),
	}
}

type fieldResp struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	Slot           int    `json:"slot"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	VisibleInTable bool   `json:"visible_in_table"`
	Order          int    `json:"order"`
}

type tagResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tagWithCountResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type grantResp struct {
	ID        string      `json:"id"`
	User      creatorResp `json:"user"`
	CreatedAt string      `json:"created_at"`
}

func newGrantResp(g inventory.AccessGrant) grantResp {
	return grantResp{
		ID:        g.ID,
		User:      creatorResp(g.User),
		CreatedAt: g.CreatedAt.Format(response.DateTimeFormat),
	}
}

type detailResp struct {
	Inventory inventoryResp `json:"inventory"`
	Fields    []fieldResp   `json:"fields"`
	Tags      []tagResp     `json:"tags"`
	Grants    []grantResp   `json:"grants"`
}

func newDetailResp(out inventory.DetailOutput) detailResp {
	resp := detailResp{
		Inventory: newInventoryResp(out.Summary),
		Fields:    make([]fieldResp, 0, len(out.Fields)),
		Tags:      make([]tagResp, 0, len(out.Tags)),
		Grants:    make([]grantResp, 0, len(out.Grants)),
	}
	for _, f := range out.Fields {
		resp.Fields = append(resp.Fields, fieldResp{
			ID:             f.ID,
			Kind:           string(f.Kind),
			Slot:           f.Slot,
			Title:          f.Title,
			Description:    f.Description,
			VisibleInTable: f.VisibleInTable,
			Order:          f.Order,
		})
	}
	for _, t := range out.Tags {
		resp.Tags = append(resp.Tags, tagResp(t))
	}
	for _, g := range out.Grants {
		resp.Grants = append(resp.Grants, newGrantResp(g))
	}
	return resp
}

type listResp struct {
	Inventories []inventoryResp `json:"inventories"`
	Total       int             `json:"total"`
}

func newListResp(out inventory.ListOutput) listResp {
	resp := listResp{
		Inventories: make([]inventoryResp, 0, len(out.Inventories)),
		Total:       out.Total,
	}
	for _, s := range out.Inventories {
		resp.Inventories = append(resp.Inventories, newInventoryResp(s))
	}
	return resp
}

type valueFreqResp struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type numberStatsResp struct {
	Field   fieldResp `json:"field"`
	Count   int       `json:"count"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Sum     float64   `json:"sum"`
	Average float64   `json:"average"`
}

type stringStatsResp struct {
	Field        fieldResp       `json:"field"`
	Count        int             `json:"count"`
	Unique       int             `json:"unique"`
	MostFrequent []valueFreqResp `json:"most_frequent"`
}

type boolStatsResp struct {
	Field      fieldResp `json:"field"`
	Total      int       `json:"total"`
	TrueCount  int       `json:"true_count"`
	FalseCount int       `json:"false_count"`
}

type statsResp struct {
	TotalItems   int               `json:"total_items"`
	NumberFields []numberStatsResp `json:"number_fields"`
	StringFields []stringStatsResp `json:"string_fields"`
	BoolFields   []boolStatsResp   `json:"bool_fields"`
}

func newFieldResp(f inventory.Field) fieldResp {
	return fieldResp{
		ID:             f.ID,
		Kind:           string(f.Kind),
		Slot:           f.Slot,
		Title:          f.Title,
		Description:    f.Description,
		VisibleInTable: f.VisibleInTable,
		Order:          f.Order,
	}
}

func newStatsResp(out inventory.StatsOutput) statsResp {
	resp := statsResp{
		TotalItems:   out.TotalItems,
		NumberFields: make([]numberStatsResp, 0, len(out.NumberFields)),
		StringFields: make([]stringStatsResp, 0, len(out.StringFields)),
		BoolFields:   make([]boolStatsResp, 0, len(out.BoolFields)),
	}
	for _, s := range out.NumberFields {
		resp.NumberFields = append(resp.NumberFields, numberStatsResp{
			Field:   newFieldResp(s.Field),
			Count:   s.Count,
			Min:     s.Min,
			Max:     s.Max,
			Sum:     s.Sum,
			Average: s.Average,
		})
	}
	for _, s := range out.StringFields {
		freq := make([]valueFreqResp, 0, len(s.MostFrequent))
		for _, v := range s.MostFrequent {
			freq = append(freq, valueFreqResp(v))
		}
		resp.StringFields = append(resp.StringFields, stringStatsResp{
			Field:        newFieldResp(s.Field),
			Count:        s.Count,
			Unique:       s.Unique,
			MostFrequent: freq,
		})
	}
	for _, s := range out.BoolFields {
		resp.BoolFields = append(resp.BoolFields, boolStatsResp{
			Field:      newFieldResp(s.Field),
			Total:      s.Total,
			TrueCount:  s.TrueCount,
			FalseCount: s.FalseCount,
		})
	}
	return resp
}

type homeResp struct {
	Latest  []inventoryResp `json:"latest"`
	Popular []inventoryResp `json:"popular"`
}

type dashboardResp struct {
	Owned      []inventoryResp `json:"owned"`
	Accessible []inventoryResp `json:"accessible"`
	TotalItems int             `json:"total_items"`
}

func newSummariesResp(summaries []inventory.Summary) []inventoryResp {
	resp := make([]inventoryResp, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, newInventoryResp(s))
	}
	return resp
}
