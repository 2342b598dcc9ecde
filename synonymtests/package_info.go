// Package synonymtests contains the self-check battery for the synonyms package.
//
// The tests run under the framework package rather than "go test", so the same battery can
// be run from the synonym-tests command against the built registry.
package synonymtests
