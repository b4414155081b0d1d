// Package config reads scenario files into a generic structured-value
// tree.
//
// The scenario model in internal/scenario never touches YAML directly;
// it consumes [Value], an abstract lookup-by-key/array view over the
// decoded document. Swapping the serialization format only touches this
// package.
package config
