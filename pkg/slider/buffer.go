package slider

// Buffer holds a local draft of an externally committed value. Drafts are
// compared by content, so committed values rebuilt with equal contents never
// overwrite the draft.
type Buffer[V comparable] struct {
	draft V
}

// Draft returns the current draft.
func (b *Buffer[V]) Draft() V {
	return b.draft
}

// Set overwrites the draft with a candidate value.
func (b *Buffer[V]) Set(v V) {
	b.draft = v
}

// Reconcile overwrites the draft with committed when their contents differ
// and reports whether it did.
func (b *Buffer[V]) Reconcile(committed V) bool {
	if b.draft == committed {
		return false
	}
	b.draft = committed
	return true
}
