package models

import (
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown object kind")

// Kind tags a concrete content type.
type Kind uint8

const (
	KindAnimation Kind = iota
	KindClass
	KindItem
	KindNpc
	KindProjectile
	KindQuest
	KindResource
	KindShop
	KindSpell
	KindCraftTable
	KindCraft
	KindMap
	KindEvent
	KindPlayerVariable
	KindServerVariable
	KindTileset
	KindTime
	KindGuildVariable
	KindUserVariable

	kindCount
)

type kindInfo struct {
	name  string
	table string
}

var kinds = [kindCount]kindInfo{
	KindAnimation:      {"animation", "Animations"},
	KindClass:          {"class", "Classes"},
	KindItem:           {"item", "Items"},
	KindNpc:            {"npc", "Npcs"},
	KindProjectile:     {"projectile", "Projectiles"},
	KindQuest:          {"quest", "Quests"},
	KindResource:       {"resource", "Resources"},
	KindShop:           {"shop", "Shops"},
	KindSpell:          {"spell", "Spells"},
	KindCraftTable:     {"crafting_table", "CraftingTables"},
	KindCraft:          {"craft", "Crafts"},
	KindMap:            {"map", "Maps"},
	KindEvent:          {"event", "Events"},
	KindPlayerVariable: {"player_variable", "PlayerVariables"},
	KindServerVariable: {"server_variable", "ServerVariables"},
	KindTileset:        {"tileset", "Tilesets"},
	KindTime:           {"time", "Time"},
	KindGuildVariable:  {"guild_variable", "GuildVariables"},
	KindUserVariable:   {"user_variable", "UserVariables"},
}

func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Table is the persistence table name for the kind.
func (k Kind) Table() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].table
}

// ParseKind accepts the String form of a kind.
func ParseKind(s string) (Kind, error) {
	for k, info := range kinds {
		if info.name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// AllKinds lists every known kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}

// Table returns the persistence table of the object's kind.
func Table(o Object) string {
	return o.Kind().Table()
}
