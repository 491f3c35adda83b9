package content

import (
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
)

// Drop is an item an NPC may leave behind, Chance in percent.
type Drop struct {
	ItemID uuid.UUID `json:"ItemId" yaml:"ItemId" validate:"required"`
	Chance float64   `json:"Chance" yaml:"Chance" validate:"gte=0,lte=100"`
}

type Npc struct {
	models.Base `yaml:",inline"`

	Level      int    `json:"Level" yaml:"Level" validate:"gte=1"`
	Aggressive bool   `json:"Aggressive" yaml:"Aggressive"`
	Drops      []Drop `json:"Drops" yaml:"Drops" validate:"dive"`
}

func NewNpc() *Npc {
	return &Npc{Base: models.NewBase(), Level: 1}
}

func NewNpcWithID(id uuid.UUID) *Npc {
	return &Npc{Base: models.NewBaseWithID(id), Level: 1}
}

func (*Npc) Kind() models.Kind { return models.KindNpc }
