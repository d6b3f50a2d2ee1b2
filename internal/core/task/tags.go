package task

// Level selects which side of a tag pair a lookup targets.
type Level int

const (
	LevelParent Level = iota
	LevelChild
)

// Class is a resolved tag classification: a display name plus the
// integer id that drives group ordering.
type Class struct {
	ID   int
	Name string
}

// Taxonomy maps raw tag strings to classifications for both tag levels.
// Lookups never fail: a tag absent from the mapping (the empty string
// included) resolves to the level's default class.
type Taxonomy struct {
	Parents       map[string]Class
	Children      map[string]Class
	ParentDefault Class
	ChildDefault  Class
}

// Classify resolves a raw tag at the given level.
func (x Taxonomy) Classify(tag string, level Level) Class {
	switch level {
	case LevelChild:
		if c, ok := x.Children[tag]; ok {
			return c
		}
		return x.ChildDefault
	default:
		if c, ok := x.Parents[tag]; ok {
			return c
		}
		return x.ParentDefault
	}
}
