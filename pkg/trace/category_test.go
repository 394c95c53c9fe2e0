package trace

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		iface string
		msg   string
		want  Category
	}{
		{"wl_pointer", "motion", CategoryMotion},
		{"wl_pointer", "frame", CategoryMotion},
		{"wl_surface", "attach", CategoryDrawing},
		{"wl_surface", "frame", CategoryDrawing},
		{"wl_surface", "damage", CategoryDrawing},
		{"wl_surface", "damage_buffer", CategoryDrawing},
		{"wl_surface", "set_input_region", CategoryRegion},
		{"wl_surface", "set_buffer_scale", CategoryHints},
		{"wl_compositor", "create_region", CategoryRegion},
		{"wl_region", "add", CategoryRegion},
		{"wl_region", "subtract", CategoryRegion},
		{"wl_region", "destroy", CategoryRegion},
		{"wl_shm", "create_pool", CategoryShm},
		{"wl_shm_pool", "create_buffer", CategoryShm},
		{"wl_shm_pool", "resize", CategoryShm},
		{"wl_buffer", "release", CategoryShm},
		{"wl_buffer", "destroy", CategoryShm},
		{"wl_display", "delete_id", CategoryDelete},
		{"xdg_toplevel", "set_min_size", CategoryHints},
		{"xdg_toplevel", "set_max_size", CategoryHints},
		{"xdg_surface", "set_window_geometry", CategoryHints},

		// Not in the table
		{"wl_keyboard", "key", CategoryUnknown},
		{"wl_display", "error", CategoryUnknown},
		{"wl_pointer", "button", CategoryUnknown},
		{"xdg_toplevel", "move", CategoryUnknown},
		{"zwp_linux_dmabuf_v1", "create_params", CategoryUnknown},
		{"", "", CategoryUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.iface, tt.msg); got != tt.want {
			t.Errorf("Classify(%q, %q) = %v, want %v", tt.iface, tt.msg, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	// Every real category round-trips through its String form.
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q) error = %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}

	// Case and surrounding whitespace are tolerated.
	if got, err := ParseCategory("  MOTION "); err != nil || got != CategoryMotion {
		t.Errorf("ParseCategory(\"  MOTION \") = %v, %v, want %v, nil", got, err, CategoryMotion)
	}

	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("ParseCategory(\"bogus\") expected error, got nil")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory(\"\") expected error, got nil")
	}
	if _, err := ParseCategory("unknown"); err == nil {
		t.Error("ParseCategory(\"unknown\") expected error: unknown is not a configurable category")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryMotion, "motion"},
		{CategoryShm, "shm"},
		{CategoryDelete, "delete"},
		{CategoryRegion, "region"},
		{CategoryDrawing, "drawing"},
		{CategoryHints, "hints"},
		{CategoryUnknown, "unknown"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("len(Categories()) = %d, want 6", len(cats))
	}
	for _, c := range cats {
		if c == CategoryUnknown {
			t.Error("Categories() contains CategoryUnknown")
		}
	}
}
