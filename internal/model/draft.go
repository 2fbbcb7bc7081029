package model

import "time"

// Draft is the single mutable "transaction being composed" slot. It sits
// outside the ledger history so a multi-step form can accumulate fields and
// tags before committing.
type Draft struct {
	TransactionInput
}

// NewDraft returns a draft reset to defaults: an expense dated now with an
// empty tag set.
func NewDraft(now time.Time) Draft {
	return Draft{TransactionInput{
		Type: TypeExpense,
		Date: now,
		Tags: []string{},
	}}
}

// AddTag appends a tag, refusing duplicates. Reports whether it was added.
func (d *Draft) AddTag(tag string) bool {
	for _, existing := range d.Tags {
		if existing == tag {
			return false
		}
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag deletes a tag. Reports whether it was present.
func (d *Draft) RemoveTag(tag string) bool {
	for i, existing := range d.Tags {
		if existing == tag {
			d.Tags = append(d.Tags[:i], d.Tags[i+1:]...)
			return true
		}
	}
	return false
}
