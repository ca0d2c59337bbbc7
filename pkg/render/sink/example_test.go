package sink_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/render/layout"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
	"github.com/matzehuels/canvas2svg/pkg/render/sink"
)

func ExampleTree() {
	doc, _ := canvas.ReadJSON(strings.NewReader(`{
	  "nodes": [
	    {"id": "a", "type": "text", "x": 0, "y": 0, "width": 100, "height": 50, "text": "Hi"},
	    {"id": "b", "type": "text", "x": 200, "y": 0, "width": 100, "height": 50, "text": "Bye"}
	  ],
	  "edges": [{"fromNode": "a", "toNode": "b", "fromSide": "right", "toSide": "left"}]
	}`))
	t, _ := layout.Normalize(doc.Nodes, layout.DefaultPadding)
	sc, _ := scene.Build(doc, t, scene.Rounded())

	root := sink.Tree(sc)
	vb, _ := root.Attr("viewBox")
	fmt.Println(vb)
	for _, p := range root.Find("path") {
		d, _ := p.Attr("d")
		fmt.Println(d)
	}
	// Output:
	// 0 0 340 90
	// M 120 45 L 220 45
}

func ExampleWriteXML() {
	root := sink.NewElement("svg", "width", "10")
	root.Add(sink.NewElement("text", "x", "5")).Text = "A & B"
	_ = sink.WriteXML(os.Stdout, root)
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <svg width="10">
	//   <text x="5">A &amp; B</text>
	// </svg>
}
