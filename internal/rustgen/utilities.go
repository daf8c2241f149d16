package rustgen

import "github.com/yacobolo/stylegen/internal/css"

// utilityDefs are the fixed helper constructors appended by the utilities
// option. Their values flow through the mapping table like any parsed
// declaration.
var utilityDefs = []struct {
	name  string
	decls []css.Declaration
}{
	{"flex_center", []css.Declaration{
		{Property: "display", Value: "flex"},
		{Property: "align-items", Value: "center"},
		{Property: "justify-content", Value: "center"},
	}},
	{"flex_column", []css.Declaration{
		{Property: "display", Value: "flex"},
		{Property: "flex-direction", Value: "column"},
	}},
	{"flex_row", []css.Declaration{
		{Property: "display", Value: "flex"},
		{Property: "flex-direction", Value: "row"},
	}},
	{"absolute_center", []css.Declaration{
		{Property: "position", Value: "absolute"},
		{Property: "top", Value: "50%"},
		{Property: "left", Value: "50%"},
		{Property: "transform", Value: "translate(-50%, -50%)"},
	}},
	{"full_width", []css.Declaration{
		{Property: "width", Value: "100%"},
	}},
	{"full_height", []css.Declaration{
		{Property: "height", Value: "100%"},
	}},
	{"hidden", []css.Declaration{
		{Property: "display", Value: "none"},
	}},
	{"visible", []css.Declaration{
		{Property: "display", Value: "block"},
	}},
}
