// Package datagen generates randomized values for test fixtures.
//
// A [Generator] owns a source of randomness. Use [Default] for quick, non-reproducible values, or [New] with [WithSeed]
// when a test needs the same data on every run.
//
//	gen := datagen.New(datagen.WithSeed(42))
//	phone, err := gen.PhoneNumber("US")
//
// Phone numbers are synthesized from a small subset of regular expression syntax and validated against the full pattern,
// see [Generator.PhoneNumberFromPattern]. [Generator.Regex] handles arbitrary patterns.
//
// None of the values here are suitable for security purposes.
package datagen
