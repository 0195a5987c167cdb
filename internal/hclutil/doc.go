// Package hclutil holds small helpers shared by the HCL-based file formats:
// block lookup, whole-number attributes and conversion of cty values into Go
// values.
package hclutil
