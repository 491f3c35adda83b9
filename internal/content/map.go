package content

import (
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
)

// Default map size in tiles.
const (
	MapWidth  = 32
	MapHeight = 26
)

type Map struct {
	models.Base `yaml:",inline"`

	Width    int `json:"Width" yaml:"Width" validate:"gte=1"`
	Height   int `json:"Height" yaml:"Height" validate:"gte=1"`
	Revision int `json:"Revision" yaml:"Revision" validate:"gte=0"`
}

func NewMap() *Map {
	return &Map{Base: models.NewBase(), Width: MapWidth, Height: MapHeight}
}

func NewMapWithID(id uuid.UUID) *Map {
	return &Map{Base: models.NewBaseWithID(id), Width: MapWidth, Height: MapHeight}
}

func (*Map) Kind() models.Kind { return models.KindMap }
