// Package dagrand is a deterministic pseudorandom generation engine.
//
// Eight nodes each draw 64-bit chunks from the binary expansion of a
// distinct mathematical constant, transform them through state-selected
// bijective meta-operations, and exchange influence over a small directed
// acyclic graph that rewires itself on an epoch schedule. The eight node
// outputs fold into one emitted word per cycle.
//
// For a fixed seed the emitted stream is byte-identical across runs and
// platforms. An advisory health monitor watches the stream out of band;
// it never blocks generation and never claims a security property.
//
// dagrand makes no cryptographic-security claims. Use crypto/rand where
// unpredictability against an adversary matters.
package dagrand
