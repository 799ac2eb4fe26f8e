// internal/defs/resources.go
package defs

import "image/color"

// Resource is a raw material kept in the inventory.
type Resource int

const (
	Wood Resource = iota
	Stone
	Dirt
	Coal
	IronOre
	Diamond
	Obsidian
	ResourceCount
)

var resourceNames = [ResourceCount]string{
	Wood:     "wood",
	Stone:    "stone",
	Dirt:     "dirt",
	Coal:     "coal",
	IronOre:  "iron_ore",
	Diamond:  "diamond",
	Obsidian: "obsidian",
}

// ResourceColors is the drop colour of each resource.
var ResourceColors = [ResourceCount]color.RGBA{
	Wood:     {0xda, 0xa5, 0x20, 0xff},
	Stone:    {0x66, 0x66, 0x66, 0xff},
	Dirt:     {0x8b, 0x45, 0x13, 0xff},
	Coal:     {0x2f, 0x2f, 0x2f, 0xff},
	IronOre:  {0xcd, 0x85, 0x3f, 0xff},
	Diamond:  {0xb9, 0xf2, 0xff, 0xff},
	Obsidian: {0x1a, 0x1a, 0x1a, 0xff},
}

func (r Resource) String() string {
	if r < 0 || r >= ResourceCount {
		return "unknown"
	}
	return resourceNames[r]
}

// ParseResource maps an inventory key like "iron_ore" back to its Resource.
func ParseResource(name string) (Resource, bool) {
	for r, n := range resourceNames {
		if n == name {
			return Resource(r), true
		}
	}
	return 0, false
}

// Resources lists every resource in inventory display order.
func Resources() []Resource {
	out := make([]Resource, 0, ResourceCount)
	for r := Resource(0); r < ResourceCount; r++ {
		out = append(out, r)
	}
	return out
}
