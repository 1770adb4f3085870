package core

import "math/rand"

// GenerateLayout builds the tile kinds for a run: FragileTileCount fragile
// tiles scattered over BridgeLength positions, the rest plain. The same
// seed always produces the same bridge.
func GenerateLayout(profile DifficultyProfile, rng *rand.Rand) []TileKind {
	layout := make([]TileKind, profile.BridgeLength)

	fragile := profile.FragileTileCount
	if fragile > len(layout) {
		fragile = len(layout)
	}

	// Pick fragile positions without replacement.
	positions := rng.Perm(len(layout))[:fragile]
	for _, pos := range positions {
		layout[pos] = KindFragile
	}
	return layout
}

// TutorialLayout returns the fixed teaching bridge: a couple of plain tiles
// to learn the strike, then alternating fragile tiles for the catch.
func TutorialLayout() []TileKind {
	return []TileKind{KindPlain, KindFragile, KindPlain, KindFragile}
}

// BuildPlatforms creates broken platforms for the given layout.
func BuildPlatforms(layout []TileKind) []*Platform {
	platforms := make([]*Platform, len(layout))
	for i, kind := range layout {
		platforms[i] = NewPlatform(i, kind)
	}
	return platforms
}
