/*
Package stealth implements the cryptographic core of an EIP-5564-style
stealth-address scheme on secp256k1 with keccak-256.

A receiver publishes two long-lived key pairs, spending and viewing. A
sender draws a fresh ephemeral key per payment and derives

	sharedSecret  = keccak256(compressed(ephemeralPriv * viewingPub))
	stealthScalar = keccak256(sharedSecret || compressed(viewingPub))
	address       = keccak256(uncompressed(stealthScalar * G)[1:])[12:]
	viewTag       = sharedSecret[0]

The receiver recomputes the same shared secret from the viewing private key
and the published ephemeral public key, so generation, scanning and
spending-key recovery all converge on identical bytes.

Protocol caveat: under the current formula the spending key pair does not
enter the derivation. GenerateStealthAddress accepts and validates a
spending public key for API symmetry but does not mix it in, and the scalar
returned by DeriveStealthSpendingKey is independent of the master spending
private key. An additive scheme (stealthPub = spendingPub +
stealthScalar*G) would change that; switching to it is a wire-breaking
protocol decision, not a local fix, so the formula is kept as deployed.
*/
package stealth
