package config

import (
	_ "embed"
)

//go:embed defaults/coins.yaml
var defaultCoinsYAML []byte

// DefaultCoinsConfig returns the default coin collector configuration.
func DefaultCoinsConfig() CoinsConfig {
	return CoinsConfig{
		Board: BoardConfig{
			Width:     5,
			Height:    5,
			MaxWidth:  20,
			MaxHeight: 12,
		},
		Coins: CoinConfig{
			Count: 0,
		},
		Avatar: AvatarConfig{
			Spawn: SpawnSource,
		},
		Movement: MovementConfig{
			CellSize:   100,
			SpriteSize: 60,
			Bounds:     BoundsBoard,
		},
		Win: WinConfig{
			DelayMS: 1000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCoinsYAML
}
