package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
)

func twoCards() []canvas.Node {
	return []canvas.Node{
		{ID: "a", Type: canvas.TypeText, X: 0, Y: 0, Width: 100, Height: 50},
		{ID: "b", Type: canvas.TypeText, X: 200, Y: 0, Width: 100, Height: 50},
	}
}

func TestNormalize_TwoCards(t *testing.T) {
	tr, err := Normalize(twoCards(), DefaultPadding)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	want := Transform{DX: 20, DY: 20, Width: 340, Height: 90, Padding: 20}
	if tr != want {
		t.Errorf("Normalize() = %+v, want %+v", tr, want)
	}
}

func TestNormalize_NegativeCoordinates(t *testing.T) {
	nodes := []canvas.Node{
		{ID: "g", Type: canvas.TypeGroup, X: -300, Y: -120, Width: 200, Height: 100},
		{ID: "a", Type: canvas.TypeText, X: 50, Y: 40, Width: 60, Height: 30},
	}
	tr, err := Normalize(nodes, 10)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if tr.DX != 310 || tr.DY != 130 {
		t.Errorf("translation = (%v, %v), want (310, 130)", tr.DX, tr.DY)
	}
	// extent x: -300 .. 110 → 410; y: -120 .. 70 → 190
	if tr.Width != 430 || tr.Height != 210 {
		t.Errorf("size = %vx%v, want 430x210", tr.Width, tr.Height)
	}
}

func TestNormalize_AllTypesContribute(t *testing.T) {
	nodes := []canvas.Node{
		{ID: "a", Type: canvas.TypeText, X: 0, Y: 0, Width: 10, Height: 10},
		{ID: "f", Type: "file", X: 500, Y: 500, Width: 10, Height: 10},
	}
	tr, err := Normalize(nodes, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Width != 510 || tr.Height != 510 {
		t.Errorf("size = %vx%v, want 510x510", tr.Width, tr.Height)
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []canvas.Node
		padding float64
		code    errors.Code
	}{
		{"nil nodes", nil, 20, errors.ErrCodeEmptyDocument},
		{"empty nodes", []canvas.Node{}, 20, errors.ErrCodeEmptyDocument},
		{"negative padding", twoCards(), -1, errors.ErrCodeInvalidInput},
		{"NaN padding", twoCards(), math.NaN(), errors.ErrCodeInvalidInput},
		{"infinite padding", twoCards(), math.Inf(1), errors.ErrCodeInvalidInput},
		{
			"overflowing width",
			[]canvas.Node{{X: -1e308, Width: 1, Height: 1}, {X: 1e308, Width: 1, Height: 1}},
			20, errors.ErrCodeInvalidInput,
		},
		{
			"overflowing height",
			[]canvas.Node{{Y: -1e308, Width: 1, Height: 1}, {Y: 1e308, Width: 1, Height: 1}},
			20, errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.nodes, tt.padding)
			if !errors.Is(err, tt.code) {
				t.Errorf("Normalize() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

// randomNodes returns nodes on a 0.25 grid so that float arithmetic is exact.
func randomNodes(r *rand.Rand, n int) []canvas.Node {
	nodes := make([]canvas.Node, n)
	for i := range nodes {
		nodes[i] = canvas.Node{
			X:      float64(r.Intn(4000)-2000) / 4,
			Y:      float64(r.Intn(4000)-2000) / 4,
			Width:  float64(r.Intn(2000)) / 4,
			Height: float64(r.Intn(2000)) / 4,
		}
	}
	return nodes
}

func TestNormalize_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const padding = 20.0

	for iter := 0; iter < 200; iter++ {
		nodes := randomNodes(r, 1+r.Intn(20))
		tr, err := Normalize(nodes, padding)
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}

		minX, minY := nodes[0].X, nodes[0].Y
		maxX, maxY := nodes[0].X+nodes[0].Width, nodes[0].Y+nodes[0].Height
		placedMinX, placedMinY := tr.Place(nodes[0]).X, tr.Place(nodes[0]).Y
		for _, n := range nodes {
			minX, minY = min(minX, n.X), min(minY, n.Y)
			maxX, maxY = max(maxX, n.X+n.Width), max(maxY, n.Y+n.Height)

			b := tr.Place(n)
			placedMinX, placedMinY = min(placedMinX, b.X), min(placedMinY, b.Y)
			if b.X+b.W > tr.Width-padding || b.Y+b.H > tr.Height-padding {
				t.Fatalf("node %+v placed outside the padded canvas %+v", n, tr)
			}
		}

		if placedMinX != padding || placedMinY != padding {
			t.Fatalf("min placed corner = (%v, %v), want (%v, %v)", placedMinX, placedMinY, padding, padding)
		}
		if tr.Width != (maxX-minX)+2*padding || tr.Height != (maxY-minY)+2*padding {
			t.Fatalf("size = %vx%v, want %vx%v", tr.Width, tr.Height, (maxX-minX)+2*padding, (maxY-minY)+2*padding)
		}
	}
}

func TestResolveAnchor(t *testing.T) {
	n := canvas.Node{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		side canvas.Side
		want Point
	}{
		{canvas.SideTop, Point{65, 25}},
		{canvas.SideBottom, Point{65, 75}},
		{canvas.SideLeft, Point{15, 50}},
		{canvas.SideRight, Point{115, 50}},
		{"", Point{65, 50}},
		{"center", Point{65, 50}},
		{"TOP", Point{65, 50}},
	}

	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			if got := ResolveAnchor(n, tt.side, 5, 5); got != tt.want {
				t.Errorf("ResolveAnchor(%q) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestResolveAnchor_TwoCardScenario(t *testing.T) {
	nodes := twoCards()
	tr, err := Normalize(nodes, DefaultPadding)
	if err != nil {
		t.Fatal(err)
	}

	start := tr.Anchor(nodes[0], canvas.SideRight)
	end := tr.Anchor(nodes[1], canvas.SideLeft)
	if start != (Point{120, 45}) {
		t.Errorf("start = %v, want (120, 45)", start)
	}
	if end != (Point{220, 45}) {
		t.Errorf("end = %v, want (220, 45)", end)
	}
}

func TestResolveAnchor_TranslationEquivariant(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	sides := []canvas.Side{canvas.SideTop, canvas.SideBottom, canvas.SideLeft, canvas.SideRight, "", "middle"}

	for _, n := range randomNodes(r, 100) {
		dx := float64(r.Intn(2000)-1000) / 4
		dy := float64(r.Intn(2000)-1000) / 4
		for _, side := range sides {
			moved := ResolveAnchor(n, side, dx, dy)
			origin := ResolveAnchor(n, side, 0, 0)
			if (Point{moved.X - dx, moved.Y - dy}) != origin {
				t.Fatalf("ResolveAnchor(%+v, %q) not equivariant: %v - (%v,%v) != %v", n, side, moved, dx, dy, origin)
			}
		}
	}
}

func TestBoxCenter(t *testing.T) {
	b := Box{X: 20, Y: 20, W: 100, H: 50}
	if b.CenterX() != 70 || b.CenterY() != 45 {
		t.Errorf("center = (%v, %v), want (70, 45)", b.CenterX(), b.CenterY())
	}
}
