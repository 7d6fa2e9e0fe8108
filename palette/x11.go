// Package palette provides constant-time lookup of the named X11 palette
// colors. The table in x11_gen.go is produced ahead of time from x11.csv;
// lookups perform two hash evaluations and one string comparison, with no
// allocation and no locking.
package palette

//go:generate go run github.com/tamirms/colormph/cmd/colormph-gen -in x11.csv -pkg palette -prefix x11 -o x11_gen.go

// Len returns the number of colors in the X11 palette.
func Len() int {
	return len(x11Names)
}

// Index returns the dense index of an X11 color name in [0, Len()).
// The name must match exactly; X11 names are lowercase ("rebeccapurple",
// not "RebeccaPurple").
func Index(name string) (int, bool) {
	return x11Index(name)
}

// Color returns the RGBA components of an X11 color name.
func Color(name string) ([4]uint8, bool) {
	i, ok := x11Index(name)
	if !ok {
		return [4]uint8{}, false
	}
	return x11Colors[i], true
}

// Name returns the color name stored at index i.
func Name(i int) string {
	return x11Names[i]
}

// RGBA returns the color components stored at index i.
func RGBA(i int) [4]uint8 {
	return x11Colors[i]
}
