// Package cryptox holds the vault's cryptographic primitives: the login
// verifier, the Argon2id key derivation and the AES-256-GCM secret cipher.
//
// The login verifier and the encryption key are derived independently, from
// different salts, so that the fast login hash never weakens the key.
//
// All binary values are persisted as standard base64 text; EncodeText and
// DecodeText are the only codec used for salts, digests, nonces and
// ciphertexts.
package cryptox
