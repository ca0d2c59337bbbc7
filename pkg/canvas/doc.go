// Package canvas defines the canvas document model and its JSON decoding.
//
// # Overview
//
// A canvas is a node-link diagram: rectangular nodes positioned in a free
// coordinate space, and directed edges attached to named sides of nodes.
//
//	{
//	  "nodes": [
//	    {"id": "g", "type": "group", "x": -40, "y": -40, "width": 400, "height": 200, "label": "Service"},
//	    {"id": "a", "type": "text", "x": 0, "y": 0, "width": 100, "height": 50, "text": "Hi", "color": "4"}
//	  ],
//	  "edges": [
//	    {"id": "e1", "fromNode": "a", "fromSide": "right", "toNode": "g", "toSide": "left"}
//	  ]
//	}
//
// # Node Types
//
// Only "group" and "text" nodes are drawn. Nodes of any other type (for
// example "file" or "link") are kept in the document and remain valid edge
// endpoints.
//
// # Optional Fields
//
// Node.Label and Node.Text are pointers so that a missing key can be told
// apart from an empty string: a group without a "label" key gets no label
// text at all, while "label": "" produces an empty one.
//
// Colors are palette keys. They are normally string digits ("0" to "6");
// numeric JSON values are accepted and converted to the same string form.
//
// # Lookup
//
// [NewIndex] builds an ID index once per document. Duplicate IDs resolve to
// the first node in input order.
package canvas
