package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChest_Valid(t *testing.T) {
	tests := []struct {
		name  string
		chest Chest
		want  bool
	}{
		{
			name:  "empty item list is invalid",
			chest: Chest{X: 1, Y: 1, Name: "Chest", Items: nil},
			want:  false,
		},
		{
			name: "empty slot is valid",
			chest: Chest{X: 1, Y: 1, Items: []ItemSlot{
				{StackSize: 0},
			}},
			want: true,
		},
		{
			name: "filled slot without item id is invalid",
			chest: Chest{X: 1, Y: 1, Items: []ItemSlot{
				{StackSize: 5, Prefix: Some(uint8(0))},
			}},
			want: false,
		},
		{
			name: "filled slot with item id and prefix is valid",
			chest: Chest{X: 1, Y: 1, Items: []ItemSlot{
				{StackSize: 5, ItemID: Some(int32(10)), Prefix: Some(uint8(0))},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.chest.Valid())
		})
	}
}

func TestChests_SaveLoad_RoundTrip(t *testing.T) {
	chests := &Chests{
		MaxItems: 2,
		Chests: []Chest{
			{
				X: 10, Y: 20, Name: "Iron Chest",
				Items: []ItemSlot{
					{StackSize: 99, ItemID: Some(int32(1)), Prefix: Some(uint8(0))},
					{StackSize: 0},
				},
			},
		},
	}

	data, err := chests.Save()
	require.NoError(t, err)

	got, err := LoadChests(NewReader(data))
	require.NoError(t, err)
	require.Equal(t, chests, got)
}

func TestChests_Valid_EmptySection(t *testing.T) {
	chests := &Chests{}
	require.True(t, chests.Valid())
}
