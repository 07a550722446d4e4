package core

import "sort"

// IndexSet holds five keyed sets of edge identities, giving O(1) expected
// lookup by label, by source vertex, by target vertex, and by
// (source,label)/(target,label). Every live edge's identity appears in
// exactly these five keys and no others; addEdge/removeEdge keep all five
// in lockstep so callers never observe a partially indexed edge.
type IndexSet struct {
	sets map[string]map[string]struct{} // composite key -> edge identities
}

func newIndexSet() *IndexSet {
	return &IndexSet{sets: make(map[string]map[string]struct{})}
}

func keyByLabel(label string) string        { return "[e]::" + label }
func keyOut(vid string) string              { return "[v]::" + vid + "_[out]" }
func keyOutLabel(vid, label string) string  { return "[v]::" + vid + "_[out]_[e]::" + label }
func keyIn(vid string) string               { return "[v]::" + vid + "_[in]" }
func keyInLabel(vid, label string) string   { return "[v]::" + vid + "_[in]_[e]::" + label }

func (ix *IndexSet) add(key, edgeID string) {
	m, ok := ix.sets[key]
	if !ok {
		m = make(map[string]struct{})
		ix.sets[key] = m
	}
	m[edgeID] = struct{}{}
}

func (ix *IndexSet) remove(key, edgeID string) {
	m, ok := ix.sets[key]
	if !ok {
		return
	}
	delete(m, edgeID)
	if len(m) == 0 {
		delete(ix.sets, key)
	}
}

func (ix *IndexSet) members(key string) []string {
	m := ix.sets[key]
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

func (ix *IndexSet) count(key string) int {
	return len(ix.sets[key])
}

// addEdge registers id (e's identity) in all five canonical keys for e.
func (ix *IndexSet) addEdge(e Edge, id string) {
	ix.add(keyByLabel(e.Label), id)
	ix.add(keyOut(e.From), id)
	ix.add(keyOutLabel(e.From, e.Label), id)
	ix.add(keyIn(e.To), id)
	ix.add(keyInLabel(e.To, e.Label), id)
}

// removeEdge purges id from all five canonical keys for e.
func (ix *IndexSet) removeEdge(e Edge, id string) {
	ix.remove(keyByLabel(e.Label), id)
	ix.remove(keyOut(e.From), id)
	ix.remove(keyOutLabel(e.From, e.Label), id)
	ix.remove(keyIn(e.To), id)
	ix.remove(keyInLabel(e.To, e.Label), id)
}

// raw returns a deterministic, sorted-key snapshot of every index bucket,
// each bucket's members sorted too -- the shape the serialized snapshot
// format (spec §6) requires.
func (ix *IndexSet) raw() map[string][]string {
	out := make(map[string][]string, len(ix.sets))
	for k, m := range ix.sets {
		ids := make([]string, 0, len(m))
		for id := range m {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[k] = ids
	}
	return out
}
