// Package codec provides the serialization formats a Vault can write:
// JSON (the default and the documented file format), CBOR, and gob.
package codec
