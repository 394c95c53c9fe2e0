package trace

import (
	"fmt"
	"strings"
)

// Category is the semantic classification of a protocol message.
type Category uint8

const (
	// CategoryUnknown means the message is not in the classification
	// table. Unknown messages are always recorded.
	CategoryUnknown Category = 0

	// CategoryMotion covers pointer motion and motion-frame events.
	CategoryMotion Category = 1

	// CategoryShm covers shared-memory pool and buffer management.
	CategoryShm Category = 2

	// CategoryDelete covers display-side object deletion notices.
	CategoryDelete Category = 3

	// CategoryRegion covers region creation and region updates.
	CategoryRegion Category = 4

	// CategoryDrawing covers surface attach, damage and frame requests.
	CategoryDrawing Category = 5

	// CategoryHints covers window sizing and scaling hints.
	CategoryHints Category = 6
)

// String returns the category name as used in configuration.
func (c Category) String() string {
	switch c {
	case CategoryMotion:
		return "motion"
	case CategoryShm:
		return "shm"
	case CategoryDelete:
		return "delete"
	case CategoryRegion:
		return "region"
	case CategoryDrawing:
		return "drawing"
	case CategoryHints:
		return "hints"
	default:
		return "unknown"
	}
}

// ParseCategory parses a configuration category name.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "motion":
		return CategoryMotion, nil
	case "shm":
		return CategoryShm, nil
	case "delete":
		return CategoryDelete, nil
	case "region":
		return CategoryRegion, nil
	case "drawing":
		return CategoryDrawing, nil
	case "hints":
		return CategoryHints, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown trace category %q", s)
	}
}

// Categories returns the six suppressible categories.
func Categories() []Category {
	return []Category{
		CategoryMotion,
		CategoryShm,
		CategoryDelete,
		CategoryRegion,
		CategoryDrawing,
		CategoryHints,
	}
}

// anyMessage matches every message on an interface.
const anyMessage = "*"

// categoryTable maps protocol interface and message names to categories.
// Resolution tries the exact message first, then the interface wildcard.
// Pairs absent from the table are uncategorized.
var categoryTable = map[string]map[string]Category{
	"wl_pointer": {
		"motion": CategoryMotion,
		"frame":  CategoryMotion,
	},
	"wl_surface": {
		"attach":           CategoryDrawing,
		"frame":            CategoryDrawing,
		"damage":           CategoryDrawing,
		"damage_buffer":    CategoryDrawing,
		"set_input_region": CategoryRegion,
		"set_buffer_scale": CategoryHints,
	},
	"wl_compositor": {
		"create_region": CategoryRegion,
	},
	"wl_region": {
		anyMessage: CategoryRegion,
	},
	"wl_shm": {
		anyMessage: CategoryShm,
	},
	"wl_shm_pool": {
		anyMessage: CategoryShm,
	},
	"wl_buffer": {
		anyMessage: CategoryShm,
	},
	"wl_display": {
		"delete_id": CategoryDelete,
	},
	"xdg_toplevel": {
		"set_min_size": CategoryHints,
		"set_max_size": CategoryHints,
	},
	"xdg_surface": {
		"set_window_geometry": CategoryHints,
	},
}

// Classify resolves the category of a protocol message.
func Classify(iface, msg string) Category {
	msgs, ok := categoryTable[iface]
	if !ok {
		return CategoryUnknown
	}
	if c, ok := msgs[msg]; ok {
		return c
	}
	if c, ok := msgs[anyMessage]; ok {
		return c
	}
	return CategoryUnknown
}
