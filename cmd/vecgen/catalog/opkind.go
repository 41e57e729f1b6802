// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

// OpKind classifies an operation by the arguments it takes and the values it
// returns. The kind alone determines the Go signature of every method of the
// generated interface.
type OpKind uint8

const (
	Splat OpKind = iota
	Unary
	Binary
	Ternary
	Compare
	Select
	Combine
	Split
	Zip
	Unzip
	Convert
	Reinterpret
	WidenNarrow
	Shift
	LoadInterleaved
	StoreInterleaved
)

var opKindNames = [...]string{
	Splat:            "splat",
	Unary:            "unary",
	Binary:           "binary",
	Ternary:          "ternary",
	Compare:          "compare",
	Select:           "select",
	Combine:          "combine",
	Split:            "split",
	Zip:              "zip",
	Unzip:            "unzip",
	Convert:          "convert",
	Reinterpret:      "reinterpret",
	WidenNarrow:      "widen_narrow",
	Shift:            "shift",
	LoadInterleaved:  "load_interleaved",
	StoreInterleaved: "store_interleaved",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "unknown"
}

// Retargets reports whether ops of this kind produce a vector of a different
// shape, named by Op.Target.
func (k OpKind) Retargets() bool {
	return k == Convert || k == Reinterpret || k == WidenNarrow
}
