// Package render provides the output visitors for inventory elements.
//
// # Text formats
//
// XMLVisitor and JSONVisitor write exactly one line per visited element:
//
//	x := render.NewXMLVisitor(os.Stdout)
//	book.Accept(x)
//	// <book><name>Dune</name><author>Frank Herbert</author><pages>412</pages></book>
//
//	j := render.NewJSONVisitor(os.Stdout, render.JSONSpaced, true)
//	book.Accept(j)
//	// {"book": {"name": "Dune", "author": "Frank Herbert", "pages": 412}}
//
// # Format selection
//
// NewVisitor maps a Format to its visitor, including the binary ID3 format
// implemented by the audio package:
//
//	f, _ := render.ParseFormat("json")
//	v, _ := render.NewVisitor(f, w, render.DefaultOptions())
//
// Supported formats:
//   - xml
//   - json
//   - id3 (binary, files only)
package render
