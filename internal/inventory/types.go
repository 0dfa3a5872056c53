package inventory

import (
	"time"

	"inventory-hub/pkg/customid"
)

// Inventory is the core collection entity. Version implements optimistic
// locking: it starts at 1 and increases by exactly 1 per accepted update.
type Inventory struct {
	ID             string
	Title          string
	Description    string
	Category       string
	IsPublic       bool
	CreatorID      string
	CustomIDFormat []customid.Element
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreatorInfo is the embedded owner summary returned with listings.
type CreatorInfo struct {
	ID    string
	Name  string
	Email string
	Image string
}

// Summary is an inventory with its creator and item count, used in listings.
type Summary struct {
	Inventory Inventory
	Creator   CreatorInfo
	ItemCount int
}

// FieldKind is the base type of a custom field definition.
type FieldKind string

const (
	FieldString FieldKind = "STRING"
	FieldText   FieldKind = "TEXT"
	FieldNumber FieldKind = "NUMBER"
	FieldLink   FieldKind = "LINK"
	FieldBool   FieldKind = "BOOL"
)

// MaxFieldsPerKind limits how many columns each kind can occupy on an item.
const MaxFieldsPerKind = 3

// Field is one custom field definition of an inventory. Slot is the 1-based
// column index within the kind (STRING_1, STRING_2, ...); Order is the
// display position across all fields.
type Field struct {
	ID             string
	InventoryID    string
	Kind           FieldKind
	Slot           int
	Title          string
	Description    string
	VisibleInTable bool
	Order          int
}

// AccessGrant gives a user write access to a non-owned inventory.
type AccessGrant struct {
	ID          string
	InventoryID string
	UserID      string
	User        CreatorInfo
	CreatedAt   time.Time
}

// Tag is a global label; inventories link to tags many-to-many.
type Tag struct {
	ID   string
	Name string
}

// TagWithCount is a tag with the number of inventories carrying it.
type TagWithCount struct {
	Tag   Tag
	Count int
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Category    string
	IsPublic    bool
}

// UpdateInput is a guarded partial update. Version is the caller-observed
// version; nil skips the optimistic-lock check.
type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Category    string
	IsPublic    bool
	Version     *int
}

type FieldInput struct {
	Kind           FieldKind
	Title          string
	Description    string
	VisibleInTable bool
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Summary Summary
	Fields  []Field
	Tags    []Tag
	Grants  []AccessGrant
}

type ListOutput struct {
	Inventories []Summary
	Total       int
}

// NumberFieldStats aggregates one NUMBER field across all items.
type NumberFieldStats struct {
	Field   Field
	Count   int
	Min     float64
	Max     float64
	Sum     float64
	Average float64
}

// ValueFrequency is one value with its occurrence count.
type ValueFrequency struct {
	Value string
	Count int
}

// StringFieldStats aggregates one STRING or TEXT field across all items.
type StringFieldStats struct {
	Field        Field
	Count        int
	Unique       int
	MostFrequent []ValueFrequency
}

// BoolFieldStats aggregates one BOOL field across all items.
type BoolFieldStats struct {
	Field      Field
	Total      int
	TrueCount  int
	FalseCount int
}

type StatsOutput struct {
	TotalItems   int
	NumberFields []NumberFieldStats
	StringFields []StringFieldStats
	BoolFields   []BoolFieldStats
}

type HomeOutput struct {
	Latest  []Summary
	Popular []Summary
}

type DashboardOutput struct {
	Owned      []Summary
	Accessible []Summary
	TotalItems int
}
