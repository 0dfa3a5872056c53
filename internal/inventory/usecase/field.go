package usecase

import (
	"context"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/model"
)

// ReplaceFields swaps the full custom field definition set of an inventory.
// Each kind holds at most MaxFieldsPerKind definitions; slots are assigned
// per kind in the order the fields arrive.
func (uc *implUseCase) ReplaceFields(ctx context.Context, sc model.Scope, id string, fields []inventory.FieldInput) (inventory.DetailOutput, error) {
	inv, err := uc.getManaged(ctx, sc, id)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	slots := map[inventory.FieldKind]int{}
	opts := make([]repo.FieldOptions, 0, len(fields))
	for i, f := range fields {
		slots[f.Kind]++
		if slots[f.Kind] > inventory.MaxFieldsPerKind {
			return inventory.DetailOutput{}, inventory.ErrTooManyFields
		}
		opts = append(opts, repo.FieldOptions{
			Kind:           f.Kind,
			Slot:           slots[f.Kind],
			Title:          f.Title,
			Description:    f.Description,
			VisibleInTable: f.VisibleInTable,
			Order:          i,
		})
	}

	if err := uc.repo.ReplaceFields(ctx, inv.ID, opts); err != nil {
		uc.l.Errorf(ctx, "inventory/usecase.ReplaceFields: %v", err)
		return inventory.DetailOutput{}, err
	}

	return uc.detail(ctx, inv)
}
