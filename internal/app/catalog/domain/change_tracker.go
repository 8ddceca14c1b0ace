package domain

// ChangeTracker records which aggregate fields have been modified so the
// repository can emit partial UPDATE mutations instead of rewriting whole
// rows.
type ChangeTracker struct {
	dirty map[string]bool
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]bool)}
}

// MarkDirty records a modified field.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = true
}

// Dirty reports whether the field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirty[field]
}

// HasChanges reports whether any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields lists the modified field names.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for f := range ct.dirty {
		fields = append(fields, f)
	}
	return fields
}

// Clear resets the tracker, typically after a successful commit.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]bool)
}
