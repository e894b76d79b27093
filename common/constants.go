package common

const (
	// TileSize is the edge length in pixels of one map tile and of every
	// entity's collision box.
	TileSize = 32

	// TPS is the fixed simulation rate. Timers count frames at this rate.
	TPS = 60

	BaseWidth  = 35 * 35
	BaseHeight = 15 * 35
)
