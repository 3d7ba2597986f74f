// Package document reads virtual-node trees from YAML and TOML files and
// builds them into layout trees.
//
// A document names an optional viewport and a root node:
//
//	viewport: {width: 80, height: 24}
//	root:
//	  tag: app
//	  style: {direction: column, width: fill, height: fill}
//	  children:
//	    - {id: header, tag: header, style: {height: 3}}
//	    - {id: body, tag: main, style: {height: fill}}
//	    - text: "status: ok"
//
// Dimensions are written as auto, fill, N% or N (cells).
package document
