package valueobjects

import "fmt"

// RelationType labels a directed edge between two tickets. Edges are never
// mirrored, so Blocks and BlockedBy are independent facts.
type RelationType string

const (
	RelationRelatedTo    RelationType = "RelatedTo"
	RelationBlocks       RelationType = "Blocks"
	RelationBlockedBy    RelationType = "BlockedBy"
	RelationDepends      RelationType = "Depends"
	RelationDuplicates   RelationType = "Duplicates"
	RelationDuplicatedBy RelationType = "DuplicatedBy"
	RelationFollows      RelationType = "Follows"
	RelationPrecedes     RelationType = "Precedes"
)

var relationTypeOrder = []RelationType{
	RelationRelatedTo,
	RelationBlocks,
	RelationBlockedBy,
	RelationDepends,
	RelationDuplicates,
	RelationDuplicatedBy,
	RelationFollows,
	RelationPrecedes,
}

func (rt RelationType) String() string {
	return string(rt)
}

func (rt RelationType) IsValid() bool {
	return rt.Ordinal() >= 0
}

func (rt RelationType) Ordinal() int {
	for i, v := range relationTypeOrder {
		if v == rt {
			return i
		}
	}
	return -1
}

func NewRelationType(s string) (RelationType, error) {
	rt := RelationType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid relation type: %s", s)
	}
	return rt, nil
}

func RelationTypeFromOrdinal(n int) (RelationType, error) {
	if n < 0 || n >= len(relationTypeOrder) {
		return "", fmt.Errorf("invalid relation type ordinal: %d", n)
	}
	return relationTypeOrder[n], nil
}

// AllRelationTypes returns every known relation type in storage order.
func AllRelationTypes() []RelationType {
	out := make([]RelationType, len(relationTypeOrder))
	copy(out, relationTypeOrder)
	return out
}
