// Package linkology inspects live, pointer-linked data structures (linked
// lists, binary and n-ary trees, adjacency-list graphs) reached through an
// opaque host capability set, without knowing their field layout ahead of
// time. Field names are discovered by probing ordered candidate sets,
// pointers and smart-pointer wrappers normalize to canonical addresses, and
// every walk is bounded and cycle safe.
package linkology
