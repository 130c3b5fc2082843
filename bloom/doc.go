// Package bloom implements the compressed Bloom filters that carry
// dependency sets, after M. Mitzenmacher (IEEE/ACM ToN 2002): filters
// kept wide and sparse so that their bit arrays compress well under an
// entropy coder. The package also provides the binary range coder that
// packs filter bits into serialized payloads.
package bloom
