// Package nestwalk provides small, stateless helpers over nested data:
//
// - Leaves/LeafPaths: depth-first leaf traversal of maps and slices (strings are atomic)
// - Flatten/FlattenDepth/FlattenOf: recursive flattening of nested sequences
// - Repr/ReprFields: "Type(field = value, ...)" rendering of exported struct fields
// - Compact/CompactFunc/CompactSeq/Runs: collapsing runs of adjacent duplicates
// - Gather/GatherOrdered: fan-in of results from concurrent workers
//
// The same traversal is available over JSON and YAML documents through the
// Source/Token SPI, which preserves document order and applies optional
// depth/size/duplicate-key enforcement.
//
// Design policy:
// - Keep only public APIs in the root package; put token handling under internal/engine.
// - Tokenizers live under source/ (json, gojson, yaml) and the CLI under cmd/nestwalk.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	for leaf := range nestwalk.Leaves(doc) {
//		fmt.Println(leaf)
//	}
//
//	leaves, err := nestwalk.LeavesFrom(ctx, nestwalk.YAMLBytes(data), nestwalk.WalkOpt{MaxDepth: 32})
//	flat := nestwalk.Flatten([]any{1, []any{2, []any{3}}})
//	compact := nestwalk.Compact([]int{1, 1, 2, 1})
package nestwalk
