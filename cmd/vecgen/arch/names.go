package arch

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.Und)

// GoName converts a native intrinsic name into the exported Go name of its
// binding. Leading underscores are dropped and every underscore-separated
// part is title-cased:
//
//	vaddq_f32           -> VaddqF32
//	_mm256_cmpgt_epi32  -> Mm256CmpgtEpi32
//	f32x4_add           -> F32x4Add
func GoName(native string) string {
	parts := lo.Compact(strings.Split(native, "_"))
	return strings.Join(lo.Map(parts, func(p string, _ int) string {
		return title.String(p)
	}), "")
}

// binding creates calls into one binding package.
type binding struct {
	pkg string
}

// call builds pkg.GoName(native)(args...) with the given result type.
func (b binding) call(native, result string, args ...Expr) *Call {
	return &Call{Func: b.pkg + "." + GoName(native), Args: args, Result: result}
}

// cast builds pkg.Cast[to](x), the bit-for-bit bridge between raw lane
// arrays and registers.
func (b binding) cast(to string, x Expr) Expr {
	if x.Type() == to {
		return x
	}
	return &Call{Func: b.pkg + ".Cast", TypeArgs: []string{to}, Args: []Expr{x}, Result: to}
}

// qual qualifies a binding type name.
func (b binding) qual(name string) string {
	return b.pkg + "." + name
}
