package server

import (
	"github.com/mc754/server/internal/registry"
	"github.com/mc754/server/internal/session"
)

// runBootstrap sends the play-state bootstrap sequence in the exact order
// spec.md §4.6 requires: Join Game, Held Item Change, Declare Recipes,
// Declare Commands, Update View Position(0,0), Update Light, Chunk Data,
// Player Position And Look.
func (s *Server) runBootstrap(sess *session.PlayerSession) error {
	joinGame := &registry.JoinGame{
		EntityID:            entityIDFromUUID(sess.UUID),
		IsHardcore:          false,
		Gamemode:            0,
		PreviousGamemode:    -1,
		WorldNames:          []string{"minecraft:overworld"},
		CurrentWorld:        "minecraft:overworld",
		HashedSeed:          0,
		MaxPlayers:          s.cfg.MaxPlayers,
		ViewDistance:        s.cfg.ViewDistance,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		IsDebug:             false,
		IsFlat:              true,
	}

	steps := []registry.ClientPacket{
		joinGame,
		&registry.HeldItemChange{Slot: 0},
		&registry.DeclareRecipes{},
		registry.EmptyDeclareCommands(),
		&registry.UpdateViewPosition{ChunkX: 0, ChunkZ: 0},
		spawnChunkLight(s.spawn.PrimaryBitMask()),
		&registry.ChunkData{Column: s.spawn, FullChunk: true},
		&registry.PlayerPositionAndLook{X: sess.X, Y: sess.Y, Z: sess.Z},
	}

	for _, p := range steps {
		if err := sess.Send(p); err != nil {
			return err
		}
	}
	return nil
}

// spawnChunkLight builds a full-bright Update Light packet for every
// section the spawn column actually stores.
func spawnChunkLight(sectionMask int32) *registry.UpdateLight {
	var arrays [][2048]byte
	for i := 0; i < 16; i++ {
		if sectionMask&(1<<uint(i)) != 0 {
			arrays = append(arrays, registry.FullBrightSection())
		}
	}
	return &registry.UpdateLight{
		ChunkX:           0,
		ChunkZ:           0,
		TrustEdges:       true,
		SkyLightMask:     int64(sectionMask) << 1,
		BlockLightMask:   0,
		SkyLightArrays:   arrays,
		BlockLightArrays: nil,
	}
}

// entityIDFromUUID derives a stable i32 entity id from the
// player's first four UUID bytes, mirroring the teacher's own
// UUID-to-entity-id scheme.
func entityIDFromUUID(id [16]byte) int32 {
	return int32(id[0])<<24 | int32(id[1])<<16 | int32(id[2])<<8 | int32(id[3])
}
