package components

import "github.com/gonewx/burgerball/pkg/types"

// EntityTypeComponent 实体变体标签
type EntityTypeComponent struct {
	Kind types.EntityKind
}
