package domain

import "time"

// Profile column names as stored in the record store.
const (
	ColumnSystemRole         = "system_role"
	ColumnFactionRank        = "faction_rank"
	ColumnDivision           = "division"
	ColumnDivisionRank       = "division_rank"
	ColumnQualifications     = "qualifications"
	ColumnIsBureauManager    = "is_bureau_manager"
	ColumnIsBureauCommander  = "is_bureau_commander"
	ColumnCommandedDivisions = "commanded_divisions"
	ColumnLastPromotionDate  = "last_promotion_date"
)

// ProfileChanges is a sparse set of proposed profile field values.
// Absent fields are left untouched.
type ProfileChanges struct {
	SystemRole         Optional[SystemRole] `json:"system_role"`
	FactionRank        Optional[string]     `json:"faction_rank"`
	Division           Optional[*string]    `json:"division"`
	DivisionRank       Optional[*string]    `json:"division_rank"`
	Qualifications     Optional[[]string]   `json:"qualifications"`
	IsBureauManager    Optional[bool]       `json:"is_bureau_manager"`
	IsBureauCommander  Optional[bool]       `json:"is_bureau_commander"`
	CommandedDivisions Optional[[]string]   `json:"commanded_divisions"`
}

// IsEmpty reports whether no recognised field is present.
func (c ProfileChanges) IsEmpty() bool {
	return !c.SystemRole.Present &&
		!c.FactionRank.Present &&
		!c.Division.Present &&
		!c.DivisionRank.Present &&
		!c.Qualifications.Present &&
		!c.IsBureauManager.Present &&
		!c.IsBureauCommander.Present &&
		!c.CommandedDivisions.Present
}

// FieldValue is one staged column write.
type FieldValue struct {
	Column string
	Value  any
}

// ProfileUpdate is the ordered column set committed as a single update.
type ProfileUpdate struct {
	Fields []FieldValue
}

// Set stages a column write, replacing an earlier write to the same column.
func (u *ProfileUpdate) Set(column string, value any) {
	for i := range u.Fields {
		if u.Fields[i].Column == column {
			u.Fields[i].Value = value
			return
		}
	}
	u.Fields = append(u.Fields, FieldValue{Column: column, Value: value})
}

// Get returns the staged value for column.
func (u ProfileUpdate) Get(column string) (any, bool) {
	for _, f := range u.Fields {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Columns lists staged columns in staging order.
func (u ProfileUpdate) Columns() []string {
	cols := make([]string, 0, len(u.Fields))
	for _, f := range u.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// IsEmpty reports whether nothing is staged.
func (u ProfileUpdate) IsEmpty() bool {
	return len(u.Fields) == 0
}

// Apply writes the staged columns onto p. Unknown columns are ignored.
func (u ProfileUpdate) Apply(p *Profile) {
	for _, f := range u.Fields {
		switch f.Column {
		case ColumnSystemRole:
			p.SystemRole = f.Value.(SystemRole)
		case ColumnFactionRank:
			p.FactionRank = f.Value.(string)
		case ColumnDivision:
			p.Division = f.Value.(*string)
		case ColumnDivisionRank:
			p.DivisionRank = f.Value.(*string)
		case ColumnQualifications:
			p.Qualifications = f.Value.([]string)
		case ColumnIsBureauManager:
			p.IsBureauManager = f.Value.(bool)
		case ColumnIsBureauCommander:
			p.IsBureauCommander = f.Value.(bool)
		case ColumnCommandedDivisions:
			p.CommandedDivisions = f.Value.([]string)
		case ColumnLastPromotionDate:
			ts := f.Value.(time.Time)
			p.LastPromotionDate = &ts
		}
	}
}
