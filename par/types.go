// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package par

import "golang.org/x/exp/constraints"

// Ordered is a constraint for element types that can be sorted with the
// built-in comparison operators.
type Ordered interface {
	constraints.Ordered
}

// Numeric is a constraint for element types that support multiplication and
// whose zero value is the multiplicative default.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is a constraint for numeric types with a total order and a conversion
// from int.
type Real interface {
	constraints.Integer | constraints.Float
}
