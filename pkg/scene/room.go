package scene

import "github.com/taigrr/painter/pkg/math3d"

// RoomOptions sizes the furnished room.
type RoomOptions struct {
	// Size is the half extent of the floor along X and Z.
	Size float64
	// Height is the half extent along Y; the floor sits at -Height.
	Height float64
	Table  bool
}

// DefaultRoomOptions matches a room viewed with a focal distance of 500.
func DefaultRoomOptions() RoomOptions {
	return RoomOptions{Size: 200, Height: 150, Table: true}
}

// Room builds an open-fronted room: floor, ceiling, back, left and right
// walls around the origin, optionally with a table.
func Room(o RoomOptions) *Scene {
	s, h := o.Size, o.Height
	v := math3d.V3

	sc := New(
		NewFloor(ColorBrown, v(-s, -h, -s), v(s, -h, -s), v(s, -h, s), v(-s, -h, s)),
		NewQuad(RGB(245, 245, 220), v(-s, h, -s), v(-s, h, s), v(s, h, s), v(s, h, -s)),
		NewQuad(RGB(176, 196, 222), v(-s, -h, -s), v(-s, h, -s), v(s, h, -s), v(s, -h, -s)),
		NewQuad(RGB(221, 160, 221), v(-s, -h, -s), v(-s, -h, s), v(-s, h, s), v(-s, h, -s)),
		NewQuad(RGB(255, 228, 181), v(s, -h, -s), v(s, h, -s), v(s, h, s), v(s, -h, s)),
	)
	if o.Table {
		sc.Add(Table(30, 60, 40, 25, 3)...)
	}
	return sc
}

// Table returns a table whose top hangs at y = -top with the given width
// (X) and length (Z), standing on four square legs.
func Table(top, width, length, legHeight, thick float64) []Primitive {
	v := math3d.V3
	w, l := width/2, length/2
	prims := []Primitive{
		NewQuad(ColorSaddle, v(-w, -top, -l), v(w, -top, -l), v(w, -top, l), v(-w, -top, l)),
	}

	ox, oz := w-thick, l-thick
	for _, p := range [][2]float64{{-ox, -oz}, {ox, -oz}, {-ox, oz}, {ox, oz}} {
		prims = append(prims, tableLeg(p[0], p[1], thick, -top, -top-legHeight)...)
	}
	return prims
}

// tableLeg returns the four side faces of a leg; top and bottom are hidden.
func tableLeg(x, z, thick, top, bottom float64) []Primitive {
	t := thick / 2
	v := math3d.V3
	c := ColorDarkWood
	return []Primitive{
		NewQuad(c, v(x-t, top, z-t), v(x+t, top, z-t), v(x+t, bottom, z-t), v(x-t, bottom, z-t)),
		NewQuad(c, v(x+t, top, z+t), v(x-t, top, z+t), v(x-t, bottom, z+t), v(x+t, bottom, z+t)),
		NewQuad(c, v(x-t, top, z+t), v(x-t, top, z-t), v(x-t, bottom, z-t), v(x-t, bottom, z+t)),
		NewQuad(c, v(x+t, top, z-t), v(x+t, top, z+t), v(x+t, bottom, z+t), v(x+t, bottom, z-t)),
	}
}

// House builds a two-storey wireframe house 20 units wide with floor
// grids, windows, stairs and a table on each level.
func House() *Scene {
	v := math3d.V3
	window := RGB(173, 216, 230)

	sc := New()
	sc.Add(WireBox(v(-10, 0, -10), v(10, 4, 10), RGB(150, 75, 0))...)
	sc.Add(WireBox(v(-10, 4, -10), v(10, 8, 10), RGB(100, 150, 200))...)
	sc.Add(Grid(-10, -10, 10, 10, 0, 2, ColorBrown)...)
	sc.Add(Grid(-10, -10, 10, 10, 4, 2, ColorSaddle)...)
	sc.Add(Grid(-10, -10, 10, 10, 8, 2, RGB(105, 105, 105))...)
	sc.Add(Window(v(-10, 1, -5), v(-10, 3, -3), window)...)
	sc.Add(Window(v(10, 1, -5), v(10, 3, -3), window)...)
	sc.Add(Window(v(-10, 5, -5), v(-10, 7, -3), window)...)
	sc.Add(Window(v(10, 5, -5), v(10, 7, -3), window)...)
	sc.Add(Stairs(8)...)
	sc.Add(WireTable(v(-3, 0.8, -3), 2, 0.8, 1.5, ColorSaddle)...)
	sc.Add(WireTable(v(3, 4.8, 3), 2, 0.8, 1.5, ColorSaddle)...)
	return sc
}

// Person returns a standing marker: a body line from the feet at pos up
// to a small head box.
func Person(pos math3d.Vec3, height float64, c Color) []Primitive {
	head := pos.Add(math3d.V3(0, height, 0))
	prims := []Primitive{NewLine(pos, head, c)}
	return append(prims, Cube(head, height*0.2, c)...)
}
