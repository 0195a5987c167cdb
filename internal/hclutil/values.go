package hclutil

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decode converts val to the cty type implied by target and stores it there.
// target must be a pointer.
func Decode(ctx context.Context, val cty.Value, target any) error {
	logger := ctxlog.FromContext(ctx)
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("target for decoding must be a non-nil pointer, got %T", target)
	}
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value must be known")
	}

	implied, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return fmt.Errorf("unsupported target type %s: %w", ptr.Elem().Type(), err)
	}

	converted, err := convert.Convert(val, implied)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), implied.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}
	return gocty.FromCtyValue(converted, target)
}

// DecodeExpression evaluates expr in evalCtx and decodes the result into
// target. Failures are reported as diagnostics pointing at expr.
func DecodeExpression(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext, target any) hcl.Diagnostics {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return diags
	}
	if err := Decode(ctx, val, target); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return diags
}

// WholeNumber evaluates a count-like attribute. The value must be a whole
// number between 0 and limit inclusive.
func WholeNumber(attr *hcl.Attribute, evalCtx *hcl.EvalContext, limit int) (int, hcl.Diagnostics) {
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid " + attr.Name + " value",
			Detail:   detail,
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}

	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, invalid(fmt.Sprintf("The '%s' attribute must be set to a known number.", attr.Name))
	}
	if val.Type() != cty.Number {
		return 0, invalid(fmt.Sprintf("The '%s' attribute must be a number.", attr.Name))
	}
	if !val.AsBigFloat().IsInt() {
		return 0, invalid(fmt.Sprintf("The '%s' attribute must be a whole number.", attr.Name))
	}

	if val.LessThan(cty.Zero).True() {
		return 0, invalid(fmt.Sprintf("The '%s' attribute must not be negative.", attr.Name))
	}
	if val.GreaterThan(cty.NumberIntVal(int64(limit))).True() {
		return 0, invalid(fmt.Sprintf("The '%s' attribute must not exceed %d.", attr.Name, limit))
	}

	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, invalid(err.Error())
	}
	return n, diags
}
