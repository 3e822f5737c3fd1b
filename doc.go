/*
Package testkit is a home for the things I reach for when writing tests that need more than table driven comparisons.

  - The assert package has predicates that return a descriptive failure instead of calling into a testing.T directly,
    so they work just as well in fixture setup, fuzz targets, and helper binaries.
  - The datagen package generates fixture values: phone numbers from simple patterns, dates, identifiers with valid
    check digits, network addresses, and numbers from a few distributions.

The fixturegen command in cmd/fixturegen prints datagen values from the command line for scripts and hand written fixtures.
None of this is meant for security sensitive randomness.
*/
package testkit
