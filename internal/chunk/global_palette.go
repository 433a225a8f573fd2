package chunk

import "fmt"

// GlobalPalette is the process-wide, read-only bijection between BlockState
// and a dense global id assigned at build time by the block-state table
// generator. That generator is an external collaborator (spec.md §1); this
// type is the embedded data module its output would populate. Lookup in
// either direction is a contract, not a performance guarantee.
type GlobalPalette struct {
	states []BlockState
	ids    map[BlockState]uint32
	byName map[string]uint16
}

// StateToID returns the global id for a block state, if it exists in the
// table.
func (p *GlobalPalette) StateToID(s BlockState) (uint32, bool) {
	id, ok := p.ids[s]
	return id, ok
}

// IDToState returns the block state for a global id, if it exists in the
// table.
func (p *GlobalPalette) IDToState(id uint32) (BlockState, bool) {
	if id >= uint32(len(p.states)) {
		return BlockState{}, false
	}
	return p.states[id], true
}

// MustStateToID looks up a state's global id, panicking on miss. Use only
// for states already validated against the table on ingress (spec.md §9).
func (p *GlobalPalette) MustStateToID(s BlockState) uint32 {
	id, ok := p.StateToID(s)
	if !ok {
		panic(fmt.Sprintf("chunk: block state %+v is not in the global palette", s))
	}
	return id
}

// Len reports the number of distinct global ids in the table.
func (p *GlobalPalette) Len() int {
	return len(p.states)
}

// blockDefinition is one row of the block-definitions source the generator
// would normally consume.
type blockDefinition struct {
	name       string
	properties int // number of distinct property combinations
}

// vanillaBlocks is a representative slice of the 1.16.5 block table. A real
// build would generate the full ~700-block, ~16000-state registry from
// Mojang's block report; this is deliberately a smaller hand-grounded subset
// sufficient to exercise every palette width the chunk engine supports.
var vanillaBlocks = []blockDefinition{
	{"minecraft:air", 1},
	{"minecraft:stone", 1},
	{"minecraft:granite", 1},
	{"minecraft:polished_granite", 1},
	{"minecraft:diorite", 1},
	{"minecraft:polished_diorite", 1},
	{"minecraft:andesite", 1},
	{"minecraft:polished_andesite", 1},
	{"minecraft:grass_block", 2},
	{"minecraft:dirt", 1},
	{"minecraft:coarse_dirt", 1},
	{"minecraft:podzol", 2},
	{"minecraft:cobblestone", 1},
	{"minecraft:oak_planks", 1},
	{"minecraft:spruce_planks", 1},
	{"minecraft:birch_planks", 1},
	{"minecraft:jungle_planks", 1},
	{"minecraft:acacia_planks", 1},
	{"minecraft:dark_oak_planks", 1},
	{"minecraft:bedrock", 1},
	{"minecraft:water", 16},
	{"minecraft:lava", 16},
	{"minecraft:sand", 1},
	{"minecraft:red_sand", 1},
	{"minecraft:gravel", 1},
	{"minecraft:gold_ore", 1},
	{"minecraft:iron_ore", 1},
	{"minecraft:coal_ore", 1},
	{"minecraft:oak_log", 4},
	{"minecraft:spruce_log", 4},
	{"minecraft:birch_log", 4},
	{"minecraft:oak_leaves", 8},
	{"minecraft:glass", 1},
	{"minecraft:lapis_ore", 1},
	{"minecraft:lapis_block", 1},
	{"minecraft:dispenser", 12},
	{"minecraft:sandstone", 1},
	{"minecraft:note_block", 1},
	{"minecraft:sticky_piston", 12},
	{"minecraft:piston", 12},
	{"minecraft:piston_head", 24},
	{"minecraft:cobweb", 1},
	{"minecraft:grass", 1},
	{"minecraft:fern", 1},
	{"minecraft:dead_bush", 1},
	{"minecraft:white_wool", 1},
	{"minecraft:orange_wool", 1},
	{"minecraft:magenta_wool", 1},
	{"minecraft:light_blue_wool", 1},
	{"minecraft:yellow_wool", 1},
	{"minecraft:lime_wool", 1},
	{"minecraft:pink_wool", 1},
	{"minecraft:gray_wool", 1},
	{"minecraft:light_gray_wool", 1},
	{"minecraft:cyan_wool", 1},
	{"minecraft:purple_wool", 1},
	{"minecraft:blue_wool", 1},
	{"minecraft:brown_wool", 1},
	{"minecraft:green_wool", 1},
	{"minecraft:red_wool", 1},
	{"minecraft:black_wool", 1},
	{"minecraft:dandelion", 1},
	{"minecraft:poppy", 1},
	{"minecraft:brown_mushroom", 1},
	{"minecraft:red_mushroom", 1},
	{"minecraft:gold_block", 1},
	{"minecraft:iron_block", 1},
	{"minecraft:bricks", 1},
	{"minecraft:tnt", 1},
	{"minecraft:bookshelf", 1},
	{"minecraft:mossy_cobblestone", 1},
	{"minecraft:obsidian", 1},
	{"minecraft:torch", 1},
	{"minecraft:fire", 512},
	{"minecraft:oak_stairs", 32},
	{"minecraft:chest", 12},
	{"minecraft:diamond_ore", 1},
	{"minecraft:diamond_block", 1},
	{"minecraft:crafting_table", 1},
	{"minecraft:furnace", 12},
	{"minecraft:ladder", 8},
	{"minecraft:rail", 10},
	{"minecraft:cobblestone_stairs", 32},
	{"minecraft:redstone_wire", 1024},
	{"minecraft:diamond_ore_deepslate", 1},
	{"minecraft:quartz_block", 1},
	{"minecraft:oak_door", 64},
	{"minecraft:iron_door", 64},
	{"minecraft:lever", 16},
	{"minecraft:stone_pressure_plate", 2},
	{"minecraft:redstone_ore", 2},
	{"minecraft:redstone_torch", 2},
	{"minecraft:snow", 8},
	{"minecraft:ice", 1},
	{"minecraft:snow_block", 1},
	{"minecraft:cactus", 16},
	{"minecraft:clay", 1},
	{"minecraft:jukebox", 2},
	{"minecraft:pumpkin", 4},
	{"minecraft:netherrack", 1},
	{"minecraft:soul_sand", 1},
	{"minecraft:glowstone", 1},
}

func buildGlobalPalette(defs []blockDefinition) *GlobalPalette {
	p := &GlobalPalette{ids: make(map[BlockState]uint32), byName: make(map[string]uint16)}

	var nextID uint32
	for blockType, def := range defs {
		p.byName[def.name] = uint16(blockType)
		for props := 0; props < def.properties; props++ {
			state := BlockState{BlockType: uint16(blockType), Properties: uint16(props)}
			p.states = append(p.states, state)
			p.ids[state] = nextID
			nextID++
		}
	}
	return p
}

// StateByName returns the base (properties=0) block state for a registered
// block name, e.g. "minecraft:stone". Used by world generation, which
// addresses blocks by name rather than by raw block-type index.
func (p *GlobalPalette) StateByName(name string) (BlockState, bool) {
	blockType, ok := p.byName[name]
	if !ok {
		return BlockState{}, false
	}
	return BlockState{BlockType: blockType, Properties: 0}, true
}

// Global is the process-wide GLOBAL_PALETTE, immutable for the process
// lifetime.
var Global = buildGlobalPalette(vanillaBlocks)
