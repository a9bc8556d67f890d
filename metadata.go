package lut3d

// Metadata is a small named-element tree attached to a LUT3D: a name, an
// optional description value, and child metadata nodes. It is immutable from
// the LUT3D's own operations except that Compose appends children when
// merging two LUT3Ds.
type Metadata struct {
	Name     string
	Value    string
	Children []Metadata
}

// Clone returns a deep copy.
func (m Metadata) Clone() Metadata {
	c := Metadata{Name: m.Name, Value: m.Value}
	if len(m.Children) > 0 {
		c.Children = make([]Metadata, len(m.Children))
		for i, ch := range m.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// MergeMetadata concatenates a's and b's children in order and joins their
// names as "<a> + <b>".
func MergeMetadata(a, b Metadata) Metadata {
	merged := Metadata{Name: a.Name + " + " + b.Name}
	merged.Children = make([]Metadata, 0, len(a.Children)+len(b.Children))
	merged.Children = append(merged.Children, a.Children...)
	merged.Children = append(merged.Children, b.Children...)
	return merged
}
