package content

import (
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
)

// Item is an inventory item definition.
type Item struct {
	models.Base `yaml:",inline"`

	Description string         `json:"Description" yaml:"Description"`
	Price       int            `json:"Price" yaml:"Price" validate:"gte=0"`
	Stackable   bool           `json:"Stackable" yaml:"Stackable"`
	MaxStack    int            `json:"MaxStack" yaml:"MaxStack" validate:"gte=0"`
	Stats       map[string]int `json:"Stats" yaml:"Stats"`
	Tags        []string       `json:"Tags" yaml:"Tags" validate:"dive,required"`
}

func NewItem() *Item {
	return &Item{Base: models.NewBase()}
}

func NewItemWithID(id uuid.UUID) *Item {
	return &Item{Base: models.NewBaseWithID(id)}
}

func (*Item) Kind() models.Kind { return models.KindItem }
