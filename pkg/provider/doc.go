// Package provider is the external collaborator the byte service depends on.
//
// It is kept deliberately independent of the rest of the module: it has its
// own input and output types ([Payload], [Outcome]) and a single pure
// function, [Functionality]. Applications are not expected to call it
// directly. Inside this module only internal/adapters/provider imports it,
// so a change to this package's shapes is absorbed by that adapter alone.
package provider
