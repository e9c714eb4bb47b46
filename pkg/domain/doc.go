// Package domain holds the value types shared by the parser, the
// transformation engine, and the serializer: transition records,
// direction and machine-type enums, the reserved-symbol alphabet, and
// the error taxonomy.
//
// All types are plain immutable values. Transformation stages build
// new records instead of mutating existing ones.
package domain
