package registry

import (
	"io"

	"github.com/mc754/server/internal/nbt"
	"github.com/mc754/server/internal/protocol"
)

// JoinGame is the client-bound packet that opens the play phase: entity
// identity, world list, and the dimension/biome registries the client needs
// to render anything at all.
type JoinGame struct {
	EntityID            int32
	IsHardcore          bool
	Gamemode            uint8
	PreviousGamemode    int8
	WorldNames          []string
	CurrentWorld        string
	HashedSeed          int64
	MaxPlayers          int32
	ViewDistance        int32
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	IsDebug             bool
	IsFlat              bool
}

// PacketID implements ClientPacket.
func (j *JoinGame) PacketID() int32 { return JoinGameID }

// Encode writes the JoinGame payload.
func (j *JoinGame) Encode(w io.Writer) error {
	if _, err := protocol.Int(j.EntityID).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(j.IsHardcore).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.UnsignedByte(j.Gamemode).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Byte(j.PreviousGamemode).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.VarInt(len(j.WorldNames)).WriteTo(w); err != nil {
		return err
	}
	for _, name := range j.WorldNames {
		if _, err := protocol.String(name).WriteTo(w); err != nil {
			return err
		}
	}
	if err := nbt.Encode(w, "", DimensionCodec()); err != nil {
		return err
	}
	if err := nbt.Encode(w, "", OverworldDimension()); err != nil {
		return err
	}
	if _, err := protocol.String(j.CurrentWorld).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Long(j.HashedSeed).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.VarInt(j.MaxPlayers).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.VarInt(j.ViewDistance).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(j.ReducedDebugInfo).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(j.EnableRespawnScreen).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(j.IsDebug).WriteTo(w); err != nil {
		return err
	}
	_, err := protocol.Boolean(j.IsFlat).WriteTo(w)
	return err
}

// dimensionTypeEntry builds one NBT compound describing a dimension type's
// fixed properties, shared by the registry entry and the per-world tag.
func dimensionTypeEntry() nbt.Tag {
	return nbt.NewCompound(
		nbt.Entry("piglin_safe", nbt.ByteTag(0)),
		nbt.Entry("natural", nbt.ByteTag(1)),
		nbt.Entry("ambient_light", nbt.FloatTag(0)),
		nbt.Entry("infiniburn", nbt.StringTag("minecraft:infiniburn_overworld")),
		nbt.Entry("respawn_anchor_works", nbt.ByteTag(0)),
		nbt.Entry("has_skylight", nbt.ByteTag(1)),
		nbt.Entry("bed_works", nbt.ByteTag(1)),
		nbt.Entry("effects", nbt.StringTag("minecraft:overworld")),
		nbt.Entry("has_raids", nbt.ByteTag(1)),
		nbt.Entry("logical_height", nbt.IntTag(256)),
		nbt.Entry("coordinate_scale", nbt.DoubleTag(1.0)),
		nbt.Entry("ultrawarm", nbt.ByteTag(0)),
		nbt.Entry("has_ceiling", nbt.ByteTag(0)),
	)
}

// biomeEntry builds a minimal plains biome registry entry; the client only
// needs something legal to resolve, not a faithful terrain description.
func biomeEntry() nbt.Tag {
	return nbt.NewCompound(
		nbt.Entry("precipitation", nbt.StringTag("rain")),
		nbt.Entry("depth", nbt.FloatTag(0.125)),
		nbt.Entry("temperature", nbt.FloatTag(0.8)),
		nbt.Entry("scale", nbt.FloatTag(0.05)),
		nbt.Entry("downfall", nbt.FloatTag(0.4)),
		nbt.Entry("category", nbt.StringTag("plains")),
		nbt.Entry("effects", nbt.NewCompound(
			nbt.Entry("sky_color", nbt.IntTag(7907327)),
			nbt.Entry("water_fog_color", nbt.IntTag(329011)),
			nbt.Entry("fog_color", nbt.IntTag(12638463)),
			nbt.Entry("water_color", nbt.IntTag(4159204)),
		)),
	)
}

// DimensionCodec builds the registry NBT compound (dimension types and
// biomes) required by Join Game, per spec.md's minimum-viable registry set.
func DimensionCodec() nbt.Tag {
	dimensionRegistryEntry := nbt.NewCompound(
		nbt.Entry("name", nbt.StringTag("minecraft:overworld")),
		nbt.Entry("id", nbt.IntTag(0)),
		nbt.Entry("element", dimensionTypeEntry()),
	)
	biomeRegistryEntry := nbt.NewCompound(
		nbt.Entry("name", nbt.StringTag("minecraft:plains")),
		nbt.Entry("id", nbt.IntTag(0)),
		nbt.Entry("element", biomeEntry()),
	)

	dimensionRegistry := nbt.NewCompound(
		nbt.Entry("type", nbt.StringTag("minecraft:dimension_type")),
		nbt.Entry("value", nbt.ListTag(nbt.KindCompound, []nbt.Tag{dimensionRegistryEntry})),
	)
	biomeRegistry := nbt.NewCompound(
		nbt.Entry("type", nbt.StringTag("minecraft:worldgen/biome")),
		nbt.Entry("value", nbt.ListTag(nbt.KindCompound, []nbt.Tag{biomeRegistryEntry})),
	)

	return nbt.NewCompound(
		nbt.Entry("minecraft:dimension_type", dimensionRegistry),
		nbt.Entry("minecraft:worldgen/biome", biomeRegistry),
	)
}

// OverworldDimension builds the per-world dimension compound Join Game
// sends alongside the registry codec.
func OverworldDimension() nbt.Tag {
	return dimensionTypeEntry()
}
