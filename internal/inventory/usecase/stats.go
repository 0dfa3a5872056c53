package usecase

import (
	"context"
	"fmt"
	"sort"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
)

const mostFrequentLimit = 5

// Stats aggregates the custom field values of all items in an inventory.
// Results are cached per (inventory, version): any accepted write bumps the
// version and therefore produces a fresh cache key.
func (uc *implUseCase) Stats(ctx context.Context, id string) (inventory.StatsOutput, error) {
	inv, err := uc.repo.GetOneInventory(ctx, id)
	if err != nil {
		return inventory.StatsOutput{}, err
	}
	if inv.ID == "" {
		return inventory.StatsOutput{}, inventory.ErrNotFound
	}

	key := fmt.Sprintf("%s:%d", inv.ID, inv.Version)
	if cached, ok := uc.stats.Get(key); ok {
		return cached, nil
	}

	fields, err := uc.repo.ListFields(ctx, inv.ID)
	if err != nil {
		return inventory.StatsOutput{}, err
	}

	rows, err := uc.repo.ListItemFieldRows(ctx, inv.ID)
	if err != nil {
		return inventory.StatsOutput{}, err
	}

	out := aggregate(fields, rows)
	uc.stats.Add(key, out)
	return out, nil
}

func aggregate(fields []inventory.Field, rows []repo.ItemFieldRow) inventory.StatsOutput {
	out := inventory.StatsOutput{TotalItems: len(rows)}

	for _, f := range fields {
		if f.Slot < 1 || f.Slot > inventory.MaxFieldsPerKind {
			continue
		}
		idx := f.Slot - 1
		switch f.Kind {
		case inventory.FieldNumber:
			out.NumberFields = append(out.NumberFields, aggregateNumber(f, rows, idx))
		case inventory.FieldString, inventory.FieldText, inventory.FieldLink:
			out.StringFields = append(out.StringFields, aggregateString(f, rows, idx))
		case inventory.FieldBool:
			out.BoolFields = append(out.BoolFields, aggregateBool(f, rows, idx))
		}
	}
	return out
}

func aggregateNumber(f inventory.Field, rows []repo.ItemFieldRow, idx int) inventory.NumberFieldStats {
	s := inventory.NumberFieldStats{Field: f}
	for _, row := range rows {
		v := row.Numbers[idx]
		if v == nil {
			continue
		}
		if s.Count == 0 || *v < s.Min {
			s.Min = *v
		}
		if s.Count == 0 || *v > s.Max {
			s.Max = *v
		}
		s.Sum += *v
		s.Count++
	}
	if s.Count > 0 {
		s.Average = s.Sum / float64(s.Count)
	}
	return s
}

func aggregateString(f inventory.Field, rows []repo.ItemFieldRow, idx int) inventory.StringFieldStats {
	s := inventory.StringFieldStats{Field: f}
	freq := map[string]int{}
	for _, row := range rows {
		var v *string
		switch f.Kind {
		case inventory.FieldText:
			v = row.Texts[idx]
		case inventory.FieldLink:
			v = row.Links[idx]
		default:
			v = row.Strings[idx]
		}
		if v == nil || *v == "" {
			continue
		}
		freq[*v]++
		s.Count++
	}
	s.Unique = len(freq)

	values := make([]inventory.ValueFrequency, 0, len(freq))
	for v, c := range freq {
		values = append(values, inventory.ValueFrequency{Value: v, Count: c})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Count != values[j].Count {
			return values[i].Count > values[j].Count
		}
		return values[i].Value < values[j].Value
	})
	if len(values) > mostFrequentLimit {
		values = values[:mostFrequentLimit]
	}
	s.MostFrequent = values
	return s
}

func aggregateBool(f inventory.Field, rows []repo.ItemFieldRow, idx int) inventory.BoolFieldStats {
	s := inventory.BoolFieldStats{Field: f}
	for _, row := range rows {
		v := row.Bools[idx]
		if v == nil {
			continue
		}
		s.Total++
		if *v {
			s.TrueCount++
		} else {
			s.FalseCount++
		}
	}
	return s
}
